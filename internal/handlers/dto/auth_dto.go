package dto

// RecoverPasswordRequest representa a requisição de recuperação de senha
type RecoverPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RecoverPasswordResponse é a resposta da geração de token.
// Token só é preenchido fora de produção, para facilitar o teste manual
// enquanto o envio de email não existe.
type RecoverPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// UpdatePasswordRequest representa a troca de senha via token
type UpdatePasswordRequest struct {
	Token     string `json:"token" binding:"required"`
	NovaSenha string `json:"novaSenha" binding:"required,min=6"`
}

// MessageResponse é uma resposta simples de sucesso
type MessageResponse struct {
	Message string `json:"message"`
}
