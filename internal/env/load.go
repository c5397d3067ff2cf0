package env

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Load reads the given file (e.g. ".env") and sets environment variables for each
// KEY=VALUE line that is not already set in the process environment, so real
// environment variables win over the file. The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	vars, err := Parse(f)
	if err != nil {
		return err
	}
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return nil
}

// Parse reads KEY=VALUE lines from r. Empty lines, lines starting with # and lines
// without a key are skipped. An optional "export " prefix is accepted and
// surrounding single or double quotes are removed from the value.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if ok {
			vars[key] = value
		}
	}
	return vars, scanner.Err()
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
		value = value[1 : n-1]
	}
	return key, value, true
}

// Lookup returns the value of key if it is set and non-empty.
func Lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
