package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastrobot/pkg/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCPFCommand(t *testing.T) {
	out, err := run(t, "cpf", "11144477735")
	require.NoError(t, err)
	assert.Equal(t, "✅ 111.444.777-35\n", out)

	out, err = run(t, "cpf", "111.111.111-11")
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "CPF inválido")
}

func TestMaskCommand(t *testing.T) {
	out, err := run(t, "mascara", "celular", "11987654321")
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321\n", out)

	out, err = run(t, "mascara", "cpf", "11144477735")
	require.NoError(t, err)
	assert.Equal(t, "111.444.777-35\tis-valid\n", out)

	_, err = run(t, "mascara", "rg", "1")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	_, err := run(t, "validar", "--nome", "Ana Souza", "--cpf", "111.444.777-35", "--celular", "(11) 98765-4321")
	require.NoError(t, err)

	out, err := run(t, "validar", "--nome", "A", "--cpf", "123", "--celular", "(11) 98765-4321")
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "nome: ")
	assert.Contains(t, out, "cpf: CPF inválido")
	assert.NotContains(t, out, "celular:")
}

func TestFileCommand(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 600, 300))
	img.Set(10, 10, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	photo := filepath.Join(dir, "foto.png")
	require.NoError(t, os.WriteFile(photo, buf.Bytes(), 0o644))

	thumb := filepath.Join(dir, "thumb.png")
	out, err := run(t, "arquivo", photo, "--preview", thumb)
	require.NoError(t, err)
	assert.Contains(t, out, "Arquivo: foto.png")
	assert.Contains(t, out, "(150x75)")
	assert.FileExists(t, thumb)

	exe := filepath.Join(dir, "setup.exe")
	require.NoError(t, os.WriteFile(exe, []byte("MZ"), 0o644))
	out, err = run(t, "arquivo", exe)
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "Tipo de arquivo não permitido")
}

func TestSearchCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/buscar", r.URL.Path)
		assert.Equal(t, "maria", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode([]models.Driver{{ID: "3", Nome: "Maria", CPF: "111.444.777-35", Celular: "(11) 3333-4444"}})
	}))
	defer srv.Close()

	out, err := run(t, "buscar", "  maria ", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Maria  111.444.777-35")
	assert.Contains(t, out, srv.URL+"/motorista/3")
}

func TestExpiryCommand(t *testing.T) {
	out, err := run(t, "validade", "2001-01-01")
	require.NoError(t, err)
	assert.Equal(t, "01/01/2001\tvencido\n", out)

	today := time.Now().Format("2006-01-02")
	for _, days := range []string{"10", "30", "31"} {
		out, err = run(t, "validade", today, "--dias", days)
		require.NoError(t, err)
		assert.Equal(t, time.Now().Format("02/01/2006")+"\tvencendo\n", out, "--dias %s", days)
	}

	_, err = run(t, "validade", "ontem")
	assert.Error(t, err)
}

func TestPayslipCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload_holerite/9", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2025", r.FormValue("ano"))
		assert.Equal(t, "03", r.FormValue("mes"))
		_, fh, err := r.FormFile("holerite")
		require.NoError(t, err)
		assert.Equal(t, "holerite.pdf", fh.Filename)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Holerite enviado com sucesso!"})
	}))
	defer srv.Close()

	pdf := filepath.Join(t.TempDir(), "holerite.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4\n"), 0o644))

	out, err := run(t, "holerite", "9", "2025", "03", pdf, "--server", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "✅ Holerite enviado com sucesso!\n", out)
}
