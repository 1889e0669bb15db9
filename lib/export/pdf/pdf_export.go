package pdfexport

import (
	"bytes"
	"fmt"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 6.0
)

// GeneratePipelineReport все этапы отклика со статусами и деталями одним документом
func GeneratePipelineReport(view pipelineapimodels.PipelineView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GeneratePipelineReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("Application %s", view.ApplicationID)), false)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(view.JobTitle), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("Application: %s", view.ApplicationID)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("Status: %s", view.Badge.Label)), "", 1, "L", false, 0, "")
	if !view.PipelineDefined {
		pdf.CellFormat(0, lineHeight, tr("Interview rounds are not defined yet"), "", 1, "L", false, 0, "")
	}
	if view.EmployerRemarks != "" {
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("Employer remarks: %s", view.EmployerRemarks)), "", "L", false)
	}
	pdf.Ln(4)

	for _, round := range view.Rounds {
		pdf.SetFont(fontFamily, "B", 13)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%d. %s", round.Order+1, round.Name)), "B", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		for _, line := range roundLines(round) {
			pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
		}
		pdf.Ln(3)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func roundLines(round pipelineapimodels.RoundView) []string {
	lines := []string{fmt.Sprintf("Status: %s", round.Status.Label)}
	if round.Status.Feedback != "" {
		lines = append(lines, fmt.Sprintf("Feedback: %s", round.Status.Feedback))
	}
	if !round.HasDetail || round.Detail == nil {
		return append(lines, "Awaiting employer update")
	}
	detail := round.Detail
	lines = append(lines, fmt.Sprintf("Dates: %s", round.DateRange))
	optional := []struct{ title, value string }{
		{"Time", detail.DailyTime},
		{"Location", detail.Location},
		{"Interviewer", detail.InterviewerName},
		{"Description", detail.Description},
		{"Employer remarks", detail.EmployerRemarks},
	}
	for _, item := range optional {
		if strings.TrimSpace(item.value) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", item.title, item.value))
		}
	}
	if round.AssessmentWindow != nil && round.AssessmentWindow.Countdown != "" {
		switch {
		case round.AssessmentWindow.IsBeforeStart:
			lines = append(lines, fmt.Sprintf("Opens in: %s", round.AssessmentWindow.Countdown))
		case round.AssessmentWindow.IsWithinWindow:
			lines = append(lines, fmt.Sprintf("Closes in: %s", round.AssessmentWindow.Countdown))
		}
	}
	return lines
}
