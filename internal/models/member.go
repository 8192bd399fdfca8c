package models

import "time"

// Member is one gym enrollment record (an "aluno"). Column and JSON names
// keep the Portuguese schema the public frontend already speaks.
type Member struct {
	ID             int64     `json:"id"`
	Nome           string    `json:"nome"`
	CPF            string    `json:"cpf"`
	Email          string    `json:"email"`
	Telefone       string    `json:"telefone"`
	DataNascimento string    `json:"data_nascimento"`
	Sexo           string    `json:"sexo"`
	Endereco       *string   `json:"endereco"`
	Plano          string    `json:"plano"`
	DataMatricula  string    `json:"data_matricula"`
	Objetivo       *string   `json:"objetivo"`
	Observacoes    *string   `json:"observacoes"`
	DataCadastro   time.Time `json:"data_cadastro"`
}

// EnrollmentRequest is the public enrollment form. Every field is a pointer:
// an absent key stays nil and reaches the insert as SQL NULL, so the table's
// NOT NULL constraints are the only validation gate.
type EnrollmentRequest struct {
	Nome           *string `json:"nome"`
	CPF            *string `json:"cpf"`
	Email          *string `json:"email"`
	Telefone       *string `json:"telefone"`
	DataNascimento *string `json:"dataNascimento"`
	Sexo           *string `json:"sexo"`
	Endereco       *string `json:"endereco"`
	Plano          *string `json:"plano"`
	DataMatricula  *string `json:"dataMatricula"`
	Objetivo       *string `json:"objetivo"`
	Observacoes    *string `json:"observacoes"`
}
