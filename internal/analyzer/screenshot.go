package analyzer

import (
	"math"
	"math/rand"

	"phishguard/internal/domain/scan"
)

const (
	screenshotPhishingThreshold   = 60
	screenshotSuspiciousThreshold = 30
)

// Screenshot — мок-скорер скриншотов: вместо OCR/vision-пайплайна решает по
// независимым случайным бросках, какие из заготовленных находок сработали.
// Источник случайности инжектируется, чтобы тесты были детерминированными.
type Screenshot struct {
	roll func() float64
}

func NewScreenshot() *Screenshot {
	return &Screenshot{roll: rand.Float64}
}

// NewScreenshotWithRoll подменяет источник бросков; броски равномерны в [0,1).
func NewScreenshotWithRoll(roll func() float64) *Screenshot {
	return &Screenshot{roll: roll}
}

func (a *Screenshot) AnalyzeScreenshot(filename string, data []byte) scan.Analysis {
	_ = filename // в настоящем пайплайне здесь был бы OCR по содержимому
	_ = data

	details := make([]string, 0, 4)
	score := 0

	// 40% — подозрительная форма логина
	if a.roll() > 0.6 {
		score += 40
		details = append(details, "Suspicious login form detected")
		details = append(details, "Urgent language patterns found")
	}

	// 30% — имитация банковского интерфейса
	if a.roll() > 0.7 {
		score += 30
		details = append(details, "Mimics legitimate banking interface")
	}

	// 20% — поле пароля без индикаторов безопасности
	if a.roll() > 0.8 {
		score += 25
		details = append(details, "Password field without proper security indicators")
	}

	var verdict scan.Verdict
	var confidence float64

	switch {
	case score >= screenshotPhishingThreshold:
		verdict = scan.VerdictPhishing
		confidence = math.Min(80+float64(score-screenshotPhishingThreshold)/2, 95)
	case score >= screenshotSuspiciousThreshold:
		verdict = scan.VerdictSuspicious
		confidence = math.Min(float64(50+score), 100)
	default:
		verdict = scan.VerdictSafe
		confidence = math.Max(float64(85-score), 60)
		details = append(details, "No suspicious elements detected")
		details = append(details, "Legitimate webpage structure")
	}

	return scan.Analysis{
		Verdict:    verdict,
		Confidence: int(math.Round(confidence)),
		Details:    details,
	}
}
