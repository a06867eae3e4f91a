package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type target struct {
	Method   string   `json:"method"`
	Path     string   `json:"path"`
	Status   int      `json:"status"`
	Keys     []string `json:"keys"`
	Critical bool     `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type check struct {
	Target      target
	Status      int
	StatusMatch bool
	MissingKeys []string
	Error       error
	Duration    time.Duration
}

func (c check) ok() bool {
	return c.Error == nil && c.StatusMatch && len(c.MissingKeys) == 0
}

func main() {
	var (
		base        string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:3001", "Data service base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "smoke", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var (
		checks   []check
		breaking int
		optional int
	)
	for _, t := range targets {
		res := checkTarget(client, base, t)
		if !res.ok() {
			if t.Critical {
				breaking++
			} else {
				optional++
			}
		}
		checks = append(checks, res)
	}

	printReport(os.Stdout, checks)

	fmt.Printf("Breaking failures: %d, Optional failures: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func checkTarget(client *http.Client, base string, tgt target) check {
	res := check{Target: tgt}
	resp, dur, err := performRequest(client, base, tgt)
	res.Duration = dur
	if err != nil {
		res.Error = err
		return res
	}
	defer resp.Body.Close()

	want := tgt.Status
	if want == 0 {
		want = http.StatusOK
	}
	res.Status = resp.StatusCode
	res.StatusMatch = res.Status == want

	if len(tgt.Keys) == 0 {
		return res
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Error = fmt.Errorf("read body: %w", err)
		return res
	}
	res.MissingKeys = missingKeys(body, tgt.Keys)
	return res
}

func performRequest(client *http.Client, base string, tgt target) (*http.Response, time.Duration, error) {
	if client == nil {
		return nil, 0, errors.New("nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := strings.TrimRight(base, "/") + path

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, 0, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	return resp, time.Since(start), nil
}

// missingKeys reports which keys are absent from a JSON object, or from the
// first element when the body is an array. An empty array satisfies every key.
func missingKeys(body []byte, keys []string) []string {
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return keys
	}
	var object map[string]interface{}
	switch val := decoded.(type) {
	case map[string]interface{}:
		object = val
	case []interface{}:
		if len(val) == 0 {
			return nil
		}
		first, ok := val[0].(map[string]interface{})
		if !ok {
			return keys
		}
		object = first
	default:
		return keys
	}

	var missing []string
	for _, k := range keys {
		if _, ok := object[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

func printReport(w io.Writer, results []check) {
	fmt.Fprintln(w, "Smoke Report")
	fmt.Fprintln(w, "============")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.ok() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
			continue
		}
		fmt.Fprintf(w, "  Status: %d (%s) | Critical: %t\n", res.Status, res.Duration, res.Target.Critical)
		if len(res.MissingKeys) > 0 {
			fmt.Fprintf(w, "  Missing keys: %s\n", strings.Join(res.MissingKeys, ", "))
		}
	}
}
