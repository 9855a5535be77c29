// gen_mocks regenerates the in-package gomock doubles. Every adapter.go or
// interfaces.go that declares an interface gets a mock_<file>.go beside it.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type FileInfo struct {
	Path     string
	Dir      string
	Pkg      string
	FileName string
}

var sources = map[string]bool{
	"adapter.go":    true,
	"interfaces.go": true,
}

var skipDirs = map[string]bool{
	"vendor":     true,
	"_examples":  true,
	"tmp":        true,
	".git":       true,
	"deployment": true,
	".vscode":    true,
	".idea":      true,
}

func main() {
	timeStart := time.Now()

	fileCh := make(chan FileInfo, 16)
	var wg sync.WaitGroup

	const numWorkers = 4
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range fileCh {
				dest := filepath.Join(f.Dir, "mock_"+f.FileName)

				cmd := exec.Command("go", "run", "go.uber.org/mock/mockgen@v0.5.2",
					"-source="+f.Path,
					"-destination="+dest,
					"-package="+f.Pkg,
				)
				if out, err := cmd.CombinedOutput(); err != nil {
					fmt.Printf("Error generating mock for %s: %v\n%s", f.Path, err, out)
					continue
				}
				fmt.Printf("Mock generated: %s\n", dest)
			}
		}()
	}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !sources[info.Name()] {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return nil
		}

		if strings.Contains(string(content), "interface {") {
			fileCh <- FileInfo{
				Path:     path,
				Dir:      filepath.Dir(path),
				Pkg:      extractPackage(string(content)),
				FileName: info.Name(),
			}
		}
		return nil
	})
	close(fileCh)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(os.Stderr, "walk: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nTotal execution time: %s\n", time.Since(timeStart))
}

func extractPackage(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			return strings.TrimPrefix(line, "package ")
		}
	}
	return ""
}
