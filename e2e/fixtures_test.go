//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const pdfBody = "%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n"

// CreateTestWorkspace creates a temporary directory used as cwd and $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateDocument writes a file into the workspace
func (tf *TUITestFramework) CreateDocument(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// CreatePDF writes a minimal PDF into the workspace
func (tf *TUITestFramework) CreatePDF(name string) (string, error) {
	return tf.CreateDocument(name, pdfBody)
}
