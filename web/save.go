// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"fmt"
	"log/slog"
	"os"
	osexec "os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"cogentcore.org/core/base/exec"
)

// Browsers are tried in order by [Page.Open]. Chromium-based browsers
// come first because they support a chromeless app window.
var Browsers = []string{"google-chrome", "chrome", "chromium", "msedge", "firefox"}

// SaveTo writes the page to the given directory as
// <name>-<HHMMSS>.html and returns the full path.
func (pg *Page) SaveTo(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("web: %q is not a directory", dir)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.html", pg.Name, time.Now().Format("150405")))
	if err := os.WriteFile(path, []byte(pg.HTML), 0666); err != nil {
		return "", err
	}
	return path, nil
}

// Save writes the page to the current directory, see [Page.SaveTo].
func (pg *Page) Save() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return pg.SaveTo(dir)
}

// Open saves the page to a temporary file, opens it in a browser, waits
// for Enter so the browser has time to load it, and removes the file.
func (pg *Page) Open() error {
	path, err := pg.SaveTo(os.TempDir())
	if err != nil {
		return err
	}
	err = openBrowser(path)
	if err == nil {
		fmt.Println("Press enter to continue...")
		fmt.Scanln()
	}
	if rerr := os.Remove(path); rerr != nil {
		slog.Error("web: removing temporary page", "path", path, "err", rerr)
	}
	return err
}

// openBrowser opens the file in the first available of [Browsers],
// falling back to the system opener.
func openBrowser(path string) error {
	url := "file:///" + strings.TrimPrefix(filepath.ToSlash(path), "/")
	for _, browser := range Browsers {
		if _, err := osexec.LookPath(browser); err != nil {
			continue
		}
		args := []string{url}
		switch browser {
		case "google-chrome", "chrome", "chromium", "msedge":
			args = []string{"--app=" + url}
		case "firefox":
			args = []string{"-new-window", url}
		}
		if err := exec.Minor().Run(browser, args...); err == nil {
			return nil
		}
		slog.Debug("web: browser failed, trying next", "browser", browser)
	}
	return systemOpen(url)
}

// systemOpen hands the URL to the operating system's default opener.
func systemOpen(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Minor().Run("open", url)
	case "windows":
		return exec.Minor().Run("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Minor().Run("xdg-open", url)
	}
}
