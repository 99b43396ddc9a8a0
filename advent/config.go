package main

import (
	"fmt"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// day21Config holds the chain depths for the two parts of day 21.
type day21Config struct {
	depthA int
	depthB int
}

var defaultDay21Config = day21Config{depthA: 2, depthB: 25}

// loadDay21Config reads the [day21] section of an INI file. An empty
// filename, a missing section, or missing keys leave the defaults in place.
func loadDay21Config(filename string) (day21Config, error) {
	cfg := defaultDay21Config
	if filename == "" {
		return cfg, nil
	}
	file, err := ini.LoadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	for key, dst := range map[string]*int{
		"depth_a": &cfg.depthA,
		"depth_b": &cfg.depthB,
	} {
		s, ok := file.Get("day21", key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("config %s: bad %s %q: %s", filename, key, s, err)
		}
		if n < 0 {
			return cfg, fmt.Errorf("config %s: %s must not be negative (got %d)", filename, key, n)
		}
		*dst = n
	}
	return cfg, nil
}
