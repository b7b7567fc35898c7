package ports

import (
	"context"
	"io"
)

// ArquivoEnviado descreve um arquivo recebido em um formulário multipart
type ArquivoEnviado struct {
	NomeOriginal string
	ContentType  string
	Tamanho      int64
	Conteudo     io.Reader
}

// FileStorage define a interface para guarda das imagens de cadastro.
// Salvar devolve o nome do arquivo armazenado, que passa a ser a
// referência persistida junto ao registro; Remover é a operação inversa,
// usada quando o registro é excluído.
type FileStorage interface {
	Salvar(ctx context.Context, arquivo *ArquivoEnviado) (string, error)
	Remover(ctx context.Context, nome string) error
}
