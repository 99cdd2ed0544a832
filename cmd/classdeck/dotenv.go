// ABOUTME: Reads a .env file into the process environment at startup.
// ABOUTME: Existing variables always win; the file only fills in gaps.
package main

import (
	"bufio"
	"os"
	"strings"
)

// loadDotEnv applies KEY=VALUE lines from path to the environment without
// clobbering variables that are already set. A missing file is fine.
// Comment lines (#), blank lines, an optional "export " prefix, and single-
// or double-quoted values are all handled.
func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		// Only the first '=' separates key from value.
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquoteEnvValue(strings.TrimSpace(value))

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
}

// unquoteEnvValue strips one layer of matching single or double quotes.
func unquoteEnvValue(v string) string {
	if len(v) < 2 {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if first == last && (first == '"' || first == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}
