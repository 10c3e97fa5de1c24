package scan

import (
	"mime/multipart"

	"phishguard/internal/domain/scan"
)

type analyzeURLInput struct {
	Body analyzeURLRequest
}

type analyzeURLRequest struct {
	// Не помечен required: отсутствующий url отдается как 400 "URL is required",
	// а не как ошибка схемы.
	URL string `json:"url,omitempty" doc:"URL для анализа, схема необязательна" example:"example.com"`
}

type analyzeScreenshotInput struct {
	RawBody multipart.Form
}

type analyzeOutput struct {
	Body scan.AnalyzeResult
}

type listInput struct {
	Limit  int    `query:"limit" default:"50" minimum:"1" maximum:"500" doc:"Максимум записей"`
	Offset int    `query:"offset" default:"0" minimum:"0" doc:"Смещение от начала истории"`
	Type   string `query:"type" enum:"url,screenshot" required:"false" doc:"Фильтр по типу скана"`
}

type listOutput struct {
	Body []scan.Scan
}

type getInput struct {
	ID int `path:"id" example:"1" doc:"ID скана"`
}

type getOutput struct {
	Body scan.Scan
}

type statsOutput struct {
	Body scan.Stats
}
