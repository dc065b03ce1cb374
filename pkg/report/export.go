package report

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// PDFOptions points pandoc at an optional LaTeX template and document class.
type PDFOptions struct {
	TemplatePath string
	ClassFile    string
}

// RenderPDF converts a markdown report to PDF with pandoc.
func RenderPDF(ctx context.Context, markdownPath, outputPath string, opts PDFOptions) (err error) {
	err = checkPandocExists(ctx)
	if err != nil {
		return err
	}

	inputs := []string{markdownPath}
	if opts.TemplatePath != "" {
		inputs = append(inputs, opts.TemplatePath)
	}
	if opts.ClassFile != "" {
		inputs = append(inputs, opts.ClassFile)
	}

	err = validateFiles(inputs...)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	cmd := exec.CommandContext(ctx, "pandoc", pandocArgs(markdownPath, outputPath, opts)...)

	if opts.ClassFile != "" {
		texinputs := filepath.Dir(opts.ClassFile) + ":" + os.Getenv("TEXINPUTS")
		cmd.Env = append(os.Environ(), "TEXINPUTS="+texinputs)
	}

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

func pandocArgs(markdownPath, outputPath string, opts PDFOptions) (args []string) {
	args = []string{
		"-f", "markdown",
		"-t", "pdf",
		"-o", outputPath,
		"-V", "geometry:landscape",
	}
	if opts.TemplatePath != "" {
		args = append(args, "--template", opts.TemplatePath)
	}
	args = append(args, markdownPath)
	return args
}

func checkPandocExists(ctx context.Context) (err error) {
	err = exec.CommandContext(ctx, "pandoc", "--version").Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

// WriteMarkdown writes markdown content to a file, creating parent directories.
func WriteMarkdown(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}

// ExportPDF writes content to a temporary markdown file beside outputPath,
// renders it, and removes the intermediate file.
func ExportPDF(ctx context.Context, content, outputPath string, opts PDFOptions) (err error) {
	markdownPath := outputPath + ".md"

	err = WriteMarkdown(content, markdownPath)
	if err != nil {
		return err
	}

	err = RenderPDF(ctx, markdownPath, outputPath, opts)

	cleanupErr := os.Remove(markdownPath)
	if err == nil && cleanupErr != nil {
		err = errors.Wrapf(cleanupErr, "failed to remove markdown file: %s", markdownPath)
	}

	return err
}
