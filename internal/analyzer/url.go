// Package analyzer реализует эвристические скореры фишинга.
package analyzer

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"

	"phishguard/internal/domain/scan"
)

var ipHostPattern = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)

var (
	suspiciousPaths = []string{"/wp-content/", ".php", "/secure/", "/login/", "/account/", "/verify/"}
	suspiciousHosts = []string{"secure", "account", "verify", "update", "confirm"}
	shortenerHosts  = []string{"bit.ly", "tinyurl.com", "t.co", "short.link"}
)

const (
	urlPhishingThreshold   = 50
	urlSuspiciousThreshold = 25
	longURLLimit           = 100
)

// URL — детерминированный скорер URL: накапливает очки по фиксированному
// набору правил и отображает сумму в вердикт с уверенностью.
type URL struct{}

func NewURL() *URL {
	return &URL{}
}

func (a *URL) AnalyzeURL(rawURL string) scan.Analysis {
	details := make([]string, 0, 4)
	score := 0

	normalized := strings.ToLower(strings.TrimSpace(rawURL))
	if !strings.HasPrefix(normalized, "http") {
		normalized = "https://" + normalized
	}

	parsed, err := url.Parse(normalized)
	if err != nil {
		// Нечитаемый URL — не ошибка, а самостоятельный вердикт.
		return scan.Analysis{
			Verdict:    scan.VerdictSuspicious,
			Confidence: 30,
			Details:    []string{"Invalid URL format"},
		}
	}

	hostname := strings.ToLower(parsed.Hostname())
	path := strings.ToLower(parsed.Path)

	if ipHostPattern.MatchString(hostname) {
		score += 30
		details = append(details, "Domain uses IP address instead of domain name")
	}

	for _, suspiciousPath := range suspiciousPaths {
		if strings.Contains(path, suspiciousPath) {
			score += 15
			details = append(details, fmt.Sprintf("Suspicious path detected: %s", suspiciousPath))
		}
	}

	if strings.Contains(path, "//") {
		score += 20
		details = append(details, "Double slashes detected in URL path")
	}

	if len(normalized) > longURLLimit {
		score += 10
		details = append(details, "URL length exceeds normal limits")
	}

	for _, token := range suspiciousHosts {
		if strings.Contains(hostname, token) {
			score += 15
			details = append(details, fmt.Sprintf("Suspicious subdomain detected: %s", token))
		}
	}

	for _, shortener := range shortenerHosts {
		if strings.Contains(hostname, shortener) {
			score += 25
			details = append(details, "URL shortener detected")
			break
		}
	}

	var verdict scan.Verdict
	var confidence float64

	switch {
	case score >= urlPhishingThreshold:
		verdict = scan.VerdictPhishing
		confidence = math.Min(85+float64(score-urlPhishingThreshold)/2, 98)
	case score >= urlSuspiciousThreshold:
		verdict = scan.VerdictSuspicious
		confidence = math.Min(float64(60+score), 100)
	default:
		verdict = scan.VerdictSafe
		confidence = math.Max(float64(90-score*2), 70)
		details = append(details, "Valid domain structure")
		details = append(details, "No suspicious URL patterns detected")
	}

	return scan.Analysis{
		Verdict:    verdict,
		Confidence: int(math.Round(confidence)),
		Details:    details,
	}
}
