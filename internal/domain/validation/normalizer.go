package validation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// NormalizarCampoArray converte as representações que os clientes enviam
// para um campo de múltipla escolha (dias de funcionamento, tipo de loja)
// em uma única string canônica separada por ", ".
//
// Formas reconhecidas, nesta precedência:
//  1. array JSON de valores
//  2. objeto JSON (usa os valores, com as chaves em ordem)
//  3. string simples com vírgulas (divide, apara e rejunta)
//  4. escalar simples (devolvido como está)
//
// Campo vazio vira string vazia. A função é idempotente: aplicar o
// resultado de novo produz a mesma string.
func NormalizarCampoArray(campo string) string {
	campo = strings.TrimSpace(campo)
	if campo == "" {
		return ""
	}

	switch campo[0] {
	case '[':
		var valores []any
		if err := json.Unmarshal([]byte(campo), &valores); err == nil {
			return juntar(valores)
		}
	case '{':
		var objeto map[string]any
		if err := json.Unmarshal([]byte(campo), &objeto); err == nil {
			chaves := make([]string, 0, len(objeto))
			for chave := range objeto {
				chaves = append(chaves, chave)
			}
			sort.Strings(chaves)

			valores := make([]any, 0, len(objeto))
			for _, chave := range chaves {
				valores = append(valores, objeto[chave])
			}
			return juntar(valores)
		}
	}

	if strings.Contains(campo, ",") {
		partes := strings.Split(campo, ",")
		aparadas := make([]string, 0, len(partes))
		for _, parte := range partes {
			aparadas = append(aparadas, strings.TrimSpace(parte))
		}
		return strings.Join(aparadas, ", ")
	}

	return campo
}

// ValidarSelecao rejeita campos de múltipla escolha sem nenhum valor
// após a normalização
func ValidarSelecao(canonico string, erroVazio error) error {
	if canonico == "" {
		return erroVazio
	}
	return nil
}

func juntar(valores []any) string {
	partes := make([]string, 0, len(valores))
	for _, v := range valores {
		partes = append(partes, strings.TrimSpace(fmt.Sprint(v)))
	}
	return strings.Join(partes, ", ")
}
