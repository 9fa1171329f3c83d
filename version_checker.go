package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	goversion "github.com/hashicorp/go-version"
)

const (
	versionURL          = "https://raw.githubusercontent.com/cwsl/irmond/refs/heads/main/version.go"
	versionCheckTimeout = 10 * time.Second
)

var (
	// LatestVersion holds the latest version fetched from GitHub
	LatestVersion string
	// latestVersionMu protects access to LatestVersion
	latestVersionMu sync.RWMutex
	// versionRegex matches the version constant in version.go
	versionRegex = regexp.MustCompile(`const\s+Version\s*=\s*"([^"]+)"`)
)

// GetLatestVersion returns the latest version fetched from GitHub
// Returns empty string if no version has been fetched yet
func GetLatestVersion() string {
	latestVersionMu.RLock()
	defer latestVersionMu.RUnlock()
	return LatestVersion
}

func setLatestVersion(version string) {
	latestVersionMu.Lock()
	defer latestVersionMu.Unlock()
	LatestVersion = version
}

// fetchVersionFromGitHub fetches the version.go file from GitHub and extracts the version
func fetchVersionFromGitHub() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), versionCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", versionURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("irmond/%s", Version))

	client := &http.Client{Timeout: versionCheckTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch version file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		matches := versionRegex.FindStringSubmatch(line)
		if len(matches) == 2 {
			return matches[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}
	return "", fmt.Errorf("version constant not found in file")
}

// checkVersion compares the running version with the latest release and
// logs when an update is available.
func checkVersion() {
	latest, err := fetchVersionFromGitHub()
	if err != nil {
		log.Printf("[Version] Check failed: %v", err)
		return
	}
	setLatestVersion(latest)

	current, err := goversion.NewVersion(Version)
	if err != nil {
		log.Printf("[Version] Invalid running version %q: %v", Version, err)
		return
	}
	remote, err := goversion.NewVersion(latest)
	if err != nil {
		log.Printf("[Version] Invalid upstream version %q: %v", latest, err)
		return
	}
	if remote.GreaterThan(current) {
		log.Printf("[Version] Update available: %s (running %s)", latest, Version)
	} else if DebugMode {
		log.Printf("[Version] Up to date (%s)", Version)
	}
}

// runVersionChecker periodically checks GitHub for a newer release.
func runVersionChecker(ctx context.Context, intervalMinutes int) {
	checkVersion()
	ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkVersion()
		}
	}
}
