// validation_pkg fails when a package name differs from its folder or when
// two folders share a name.
package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

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
	folders := make(map[string][]string)
	var problems []string

	fset := token.NewFileSet()
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			if path != "." {
				folders[d.Name()] = append(folders[d.Name()], path)
			}
			return nil
		}

		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.PackageClauseOnly)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		pkg := file.Name.Name
		if pkg == "main" {
			return nil
		}

		folder := filepath.Base(filepath.Dir(path))
		if folder != "." && pkg != folder {
			problems = append(problems, fmt.Sprintf("package %q does not match folder %q in %s", pkg, folder, path))
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for name, paths := range folders {
		if len(paths) > 1 {
			problems = append(problems, fmt.Sprintf("folder %q is duplicated: %s", name, strings.Join(paths, ", ")))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		for _, p := range problems {
			fmt.Println("ERROR:", p)
		}
		os.Exit(1)
	}

	fmt.Println("No problems found.")
}
