package cli

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// LinkOpener hands outbound links to the desktop. Following a link leaves
// the program; only the handoff itself can fail.
type LinkOpener interface {
	Open(link string) error
	Copy(text string) error
}

type systemLinks struct {
	logger *zap.Logger
}

func newSystemLinks(logger *zap.Logger) *systemLinks {
	return &systemLinks{logger: logger}
}

// Open launches the platform opener for link without waiting for it.
func (s *systemLinks) Open(link string) error {
	if err := checkLink(link); err != nil {
		return err
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", link)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", link, err)
	}
	go func() { _ = cmd.Wait() }()
	s.logger.Debug("opened link", zap.String("url", link))
	return nil
}

func (s *systemLinks) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// checkLink accepts only absolute http(s) and mailto URLs.
func checkLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", link, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("invalid link %q: missing host", link)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("invalid link %q: missing address", link)
		}
	default:
		return fmt.Errorf("refusing to open %q: unsupported scheme", link)
	}
	return nil
}

// mailtoURL builds a mailto link with an optional subject and body.
func mailtoURL(address, subject, body string) string {
	var params []string
	if subject != "" {
		params = append(params, "subject="+mailEscape(subject))
	}
	if body != "" {
		params = append(params, "body="+mailEscape(body))
	}
	link := "mailto:" + address
	if len(params) > 0 {
		link += "?" + strings.Join(params, "&")
	}
	return link
}

// mailEscape percent-encodes s for a mailto header; spaces become %20
// because mail clients do not decode '+'.
func mailEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
