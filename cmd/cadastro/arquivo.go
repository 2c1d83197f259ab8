package main

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cadastrobot/pkg/models"
	"cadastrobot/pkg/validation"
)

func newFileCmd() *cobra.Command {
	var previewPath string

	cmd := &cobra.Command{
		Use:   "arquivo <caminho>",
		Short: "Check an upload against the size and type limits",
		Long: `Check a file the way the registration form does before upload.
Images can also be written out as a thumbnail with --preview.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := fileInfo(args[0])
			if err != nil {
				return err
			}

			if err := validation.ValidateFile(info); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "🚫 "+validation.AlertMessage(err))
				return errInvalid
			}

			if previewPath == "" || !validation.IsImage(info) {
				fmt.Fprintf(cmd.OutOrStdout(), "Arquivo: %s\nTamanho: %s\n", info.Name, validation.FormatSize(info.Size))
				return nil
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			p, err := validation.BuildPreview(info, f)
			if err != nil {
				return err
			}
			if err := os.WriteFile(previewPath, p.PNG, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nPreview: %s (%dx%d)\n", p.Caption(), previewPath, p.Width, p.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&previewPath, "preview", "p", "", "write an image thumbnail to this PNG path")
	return cmd
}

// fileInfo declares a local file the way a browser would: its extension
// decides the type, falling back to sniffing the content.
func fileInfo(path string) (models.FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return models.FileInfo{}, err
	}

	mt := mime.TypeByExtension(filepath.Ext(path))
	if mt == "" {
		f, err := os.Open(path)
		if err != nil {
			return models.FileInfo{}, err
		}
		defer f.Close()
		head := make([]byte, 512)
		n, _ := f.Read(head)
		mt = http.DetectContentType(head[:n])
	}
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		mt = parsed
	}

	return models.FileInfo{Name: filepath.Base(path), MIME: mt, Size: st.Size()}, nil
}
