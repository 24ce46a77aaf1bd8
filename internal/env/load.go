package env

import (
	"bufio"
	"os"
	"strings"
)

// Parse reads KEY=VALUE lines from the file at path. Empty lines and lines
// starting with # are skipped; surrounding quotes are removed from values.
// A missing file yields no values and no error.
func Parse(path string) (map[string]string, error) {
	vals := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vals, nil
		}
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		vals[key] = value
	}
	return vals, scanner.Err()
}

// Load parses path and sets each variable not already present in the process
// environment, so real environment settings win over the file.
func Load(path string) error {
	vals, err := Parse(path)
	if err != nil {
		return err
	}
	for k, v := range vals {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
