package scan

import "time"

// ScanType определяет источник анализа.
type ScanType string

const (
	TypeURL        ScanType = "url"
	TypeScreenshot ScanType = "screenshot"
)

func (t ScanType) String() string {
	return string(t)
}

func (t ScanType) Valid() bool {
	return t == TypeURL || t == TypeScreenshot
}

// Verdict — категориальный результат анализа.
type Verdict string

const (
	VerdictSafe       Verdict = "safe"
	VerdictPhishing   Verdict = "phishing"
	VerdictSuspicious Verdict = "suspicious"
)

func (v Verdict) String() string {
	return string(v)
}

type Scan struct {
	ID         int       `json:"id"`
	Type       ScanType  `json:"type"`
	Target     string    `json:"target"`
	Verdict    Verdict   `json:"verdict"`
	Confidence int       `json:"confidence"`
	Details    []string  `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Analysis — результат скоринга до сохранения.
type Analysis struct {
	Verdict    Verdict
	Confidence int
	Details    []string
}

type Stats struct {
	TotalScans      int `json:"totalScans"`
	SafeCount       int `json:"safeCount"`
	PhishingCount   int `json:"phishingCount"`
	SuspiciousCount int `json:"suspiciousCount"`
}
