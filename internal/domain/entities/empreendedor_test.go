package entities

import "testing"

func TestNovoEmpreendedor(t *testing.T) {
	t.Run("monta o registro canônico com opcionais vazios como nil", func(t *testing.T) {
		e := NovoEmpreendedor(CadastroValidado{
			Nome:              "Padaria do Zé",
			Categoria:         CategoriaAlimentacao,
			Lat:               -4.044,
			Lng:               -39.455,
			HoraInicio:        "06:00",
			HoraFim:           "12:00",
			DiasFuncionamento: "Seg, Ter",
			TipoLoja:          "física",
		}, "abc123.jpg")

		if e.Nome != "Padaria do Zé" {
			t.Errorf("nome errado: %q", e.Nome)
		}
		if e.Lat != -4.044 || e.Lng != -39.455 {
			t.Errorf("coordenadas erradas: %v, %v", e.Lat, e.Lng)
		}
		if e.Email != nil || e.Telefone != nil || e.Descricao != nil || e.Endereco != nil {
			t.Error("opcionais vazios deveriam ser nil")
		}
		if e.HoraTardeInicio != nil || e.HoraTardeFim != nil {
			t.Error("horário da tarde vazio deveria ser nil")
		}
		if e.Imagem != "abc123.jpg" {
			t.Errorf("imagem errada: %q", e.Imagem)
		}
	})

	t.Run("apara espaços de nome e endereço", func(t *testing.T) {
		e := NovoEmpreendedor(CadastroValidado{
			Nome:     "  Padaria do Zé  ",
			Endereco: "  Rua das Flores, 10  ",
		}, "x.jpg")

		if e.Nome != "Padaria do Zé" {
			t.Errorf("nome não aparado: %q", e.Nome)
		}
		if e.Endereco == nil || *e.Endereco != "Rua das Flores, 10" {
			t.Errorf("endereço não aparado: %v", e.Endereco)
		}
	})

	t.Run("opcionais preenchidos viram ponteiros com o valor", func(t *testing.T) {
		e := NovoEmpreendedor(CadastroValidado{
			Nome:            "Padaria do Zé",
			Email:           "ze@padaria.com",
			Telefone:        "(11) 99999-9999",
			HoraTardeInicio: "14:00",
			HoraTardeFim:    "18:00",
		}, "x.jpg")

		if e.Email == nil || *e.Email != "ze@padaria.com" {
			t.Errorf("email errado: %v", e.Email)
		}
		if e.Telefone == nil || *e.Telefone != "(11) 99999-9999" {
			t.Errorf("telefone errado: %v", e.Telefone)
		}
		if e.HoraTardeInicio == nil || e.HoraTardeFim == nil {
			t.Error("horário da tarde deveria estar preenchido")
		}
	})
}
