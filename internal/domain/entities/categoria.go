package entities

// Categoria representa a categoria de um negócio no diretório
type Categoria string

const (
	CategoriaAlimentacao Categoria = "Alimentação"
	CategoriaModa        Categoria = "Moda"
	CategoriaServicos    Categoria = "Serviços"
	CategoriaTecnologia  Categoria = "Tecnologia"
	CategoriaSaude       Categoria = "Saúde"
	CategoriaOutro       Categoria = "Outro"
)

// Categorias lista todas as categorias aceitas no cadastro
var Categorias = []Categoria{
	CategoriaAlimentacao,
	CategoriaModa,
	CategoriaServicos,
	CategoriaTecnologia,
	CategoriaSaude,
	CategoriaOutro,
}

// IsValid verifica se a categoria pertence ao conjunto fixo aceito
func (c Categoria) IsValid() bool {
	for _, cat := range Categorias {
		if c == cat {
			return true
		}
	}
	return false
}
