// Package storage implementa o colaborador de upload: guarda as imagens
// de cadastro no disco local e as remove quando o registro é excluído.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainerrors "github.com/rafabene/empreendelocal-backend/internal/domain/errors"
	"github.com/rafabene/empreendelocal-backend/internal/domain/ports"
)

// TiposAceitos são os content-types de imagem permitidos no cadastro
var TiposAceitos = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// DiskStore implementa ports.FileStorage gravando em um diretório local
type DiskStore struct {
	dir           string
	tamanhoMaximo int64
	logger        ports.Logger
}

// NewDiskStore cria um novo DiskStore, garantindo que o diretório exista
func NewDiskStore(dir string, tamanhoMaximo int64, logger ports.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, tamanhoMaximo: tamanhoMaximo, logger: logger}, nil
}

// Salvar valida tipo e tamanho e grava o arquivo com um nome único,
// preservando a extensão original. Retorna o nome armazenado.
func (s *DiskStore) Salvar(ctx context.Context, arquivo *ports.ArquivoEnviado) (string, error) {
	if arquivo == nil {
		return "", domainerrors.ErrImagemObrigatoria
	}

	if !tipoAceito(arquivo.ContentType) {
		return "", domainerrors.ErrFormatoImagemNaoSuportado
	}

	if s.tamanhoMaximo > 0 && arquivo.Tamanho > s.tamanhoMaximo {
		return "", domainerrors.ErrImagemMuitoGrande
	}

	nome := uuid.New().String() + strings.ToLower(filepath.Ext(arquivo.NomeOriginal))
	destino := filepath.Join(s.dir, nome)

	f, err := os.Create(destino) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	// Limite aplicado também na cópia, caso o tamanho declarado minta
	limite := arquivo.Conteudo
	if s.tamanhoMaximo > 0 {
		limite = io.LimitReader(arquivo.Conteudo, s.tamanhoMaximo+1)
	}

	escrito, err := io.Copy(f, limite)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(destino)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if s.tamanhoMaximo > 0 && escrito > s.tamanhoMaximo {
		_ = os.Remove(destino)
		return "", domainerrors.ErrImagemMuitoGrande
	}

	s.logger.Info("image stored", "name", nome, "size", escrito)
	return nome, nil
}

// Remover apaga um arquivo armazenado; arquivo já ausente não é erro
func (s *DiskStore) Remover(ctx context.Context, nome string) error {
	// Nome vem do banco, mas nunca deixar escapar do diretório
	destino := filepath.Join(s.dir, filepath.Base(nome))

	if err := os.Remove(destino); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove file: %w", err)
	}

	s.logger.Info("image removed", "name", nome)
	return nil
}

func tipoAceito(contentType string) bool {
	for _, tipo := range TiposAceitos {
		if contentType == tipo {
			return true
		}
	}
	return false
}
