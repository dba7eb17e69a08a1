// Package resumepdf converts Markdown resumes to styled, paginated PDFs.
//
// The input is a narrow resume-flavored Markdown dialect: one level-1
// heading (the candidate name) followed by level-2 sections containing
// organization lines, date/location lines, bullets, and free text. The
// package parses that dialect into a structured document model, reorders
// sections into a canonical presentation order, computes dynamic font
// sizing so one-page mode fits a single US Letter page, and renders through a
// pluggable layout engine.
//
// Two engines are provided: a direct PDF writer built on gofpdf, and an
// HTML+print engine that renders through headless Chrome via go-rod. When
// engine selection is "auto" and Chrome is unavailable, conversion falls
// back to the direct writer.
//
// Basic usage:
//
//	conv := resumepdf.NewConverter()
//	defer conv.Close()
//
//	res, err := conv.Convert(ctx, resumepdf.Input{
//		Markdown: mdContent,
//		OnePage:  true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("resume.pdf", res.PDF, 0o644)
package resumepdf
