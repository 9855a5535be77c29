package intertime

import (
	"encoding/json"
	"time"
)

// Duration wraps time.Duration so it reads and writes as a human string
// ("90s", "1h30m") in JSON and in env vars instead of nanoseconds.
//
//	type PriceRule struct {
//		Window Duration `json:"window"`
//	}
//
//	// JSON: {"window": "48h"}
type Duration time.Duration

// UnmarshalJSON accepts a duration string, or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n int64
		if numErr := json.Unmarshal(b, &n); numErr != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}

	return d.SetValue(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SetValue lets cleanenv decode the value from an environment variable.
func (d *Duration) SetValue(s string) error {
	duration, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(duration)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
