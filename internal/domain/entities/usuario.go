package entities

import "time"

// Usuario representa uma conta usada na recuperação de senha
type Usuario struct {
	ID           uint
	Email        string
	SenhaHash    string
	ResetToken   *string
	ResetExpires *time.Time
}

// TokenExpirado verifica se o token de recuperação já venceu
func (u *Usuario) TokenExpirado(agora time.Time) bool {
	return u.ResetExpires == nil || u.ResetExpires.Before(agora)
}

// DefinirResetToken registra um novo token de recuperação com validade
func (u *Usuario) DefinirResetToken(token string, expira time.Time) {
	u.ResetToken = &token
	u.ResetExpires = &expira
}

// LimparResetToken invalida o token após o uso
func (u *Usuario) LimparResetToken() {
	u.ResetToken = nil
	u.ResetExpires = nil
}
