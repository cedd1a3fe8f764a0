package schedule

import (
	"fmt"
	"strings"
)

// Format identifies the source document format
type Format string

const (
	FormatText Format = "text"
	FormatDocx Format = "docx"
	FormatXlsx Format = "xlsx"
	FormatXls  Format = "xls"
	FormatPdf  Format = "pdf"
)

// FormatFromFilename maps a file name to its Format by extension
func FormatFromFilename(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext(name), ".")) {
	case "txt", "text":
		return FormatText, true
	case "docx":
		return FormatDocx, true
	case "xlsx":
		return FormatXlsx, true
	case "xls":
		return FormatXls, true
	case "pdf":
		return FormatPdf, true
	}
	return "", false
}

func ext(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// Options tunes a parse run. The header overrides win over whatever
// the document itself declares.
type Options struct {
	IgnoreImages   bool
	SpecialityName string
	AcademicYear   string
	Semester       string
	SectionName    string
}

// Parse dispatches raw document bytes to the adapter for the given
// format and finalizes the result into its output shapes.
func Parse(format Format, data []byte, opts Options) *Result {
	var res *Result
	switch format {
	case FormatText:
		res = ParseText(string(data))
	case FormatDocx:
		res = ParseDocx(data, opts.IgnoreImages)
	case FormatXlsx:
		res = ParseXlsx(data)
	case FormatXls:
		res = ParseXls(data)
	case FormatPdf:
		res = ParsePdf(data)
	default:
		return failure(fmt.Sprintf("unsupported format %q", format), nil)
	}
	return Finalize(res, opts)
}

// Finalize applies the option overrides to the header and fills the
// formatted and database-ready projections of a successful result.
func Finalize(res *Result, opts Options) *Result {
	if !res.Success || res.Data == nil {
		return res
	}

	if opts.SpecialityName != "" {
		res.Data.HeaderInfo.Speciality = opts.SpecialityName
	}
	if opts.AcademicYear != "" {
		res.Data.HeaderInfo.AcademicYear = opts.AcademicYear
	}
	if opts.Semester != "" {
		res.Data.HeaderInfo.Semester = opts.Semester
	}
	if opts.SectionName != "" {
		res.Data.HeaderInfo.Section = opts.SectionName
	}

	res.FormattedOutput = FormatOutput(res.Data)
	res.DatabaseReady = FormatForDatabase(res.Data)
	return res
}
