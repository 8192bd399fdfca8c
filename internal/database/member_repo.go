package database

import (
	"context"
	"database/sql"

	"academia-backend/internal/models"
)

// MemberRepo handles enrollment rows in the alunos table.
type MemberRepo struct {
	db *DB
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(db *DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// Create inserts one enrollment. Fields arrive as pointers straight from
// the form; nil values become SQL NULL, so the NOT NULL constraints decide
// what a valid enrollment is. data_cadastro is assigned by the store.
func (r *MemberRepo) Create(ctx context.Context, req *models.EnrollmentRequest) (int64, error) {
	result, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO alunos (nome, cpf, email, telefone, data_nascimento, sexo, endereco, plano, data_matricula, objetivo, observacoes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, req.Nome, req.CPF, req.Email, req.Telefone, req.DataNascimento, req.Sexo,
		req.Endereco, req.Plano, req.DataMatricula, req.Objetivo, req.Observacoes)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// List retrieves all enrollments, most recent first. The id tiebreaker
// keeps same-second inserts in insertion order.
func (r *MemberRepo) List(ctx context.Context) ([]*models.Member, error) {
	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT id, nome, cpf, email, telefone, data_nascimento, sexo, endereco,
		       plano, data_matricula, objetivo, observacoes, data_cadastro
		FROM alunos ORDER BY data_cadastro DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		member := &models.Member{}
		var endereco, objetivo, observacoes sql.NullString

		err := rows.Scan(
			&member.ID, &member.Nome, &member.CPF, &member.Email, &member.Telefone,
			&member.DataNascimento, &member.Sexo, &endereco,
			&member.Plano, &member.DataMatricula, &objetivo, &observacoes,
			&member.DataCadastro,
		)
		if err != nil {
			return nil, err
		}

		if endereco.Valid {
			member.Endereco = &endereco.String
		}
		if objetivo.Valid {
			member.Objetivo = &objetivo.String
		}
		if observacoes.Valid {
			member.Observacoes = &observacoes.String
		}

		members = append(members, member)
	}

	return members, rows.Err()
}

// Delete removes an enrollment by id. Deleting an id that does not exist
// is not an error.
func (r *MemberRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.conn.ExecContext(ctx, "DELETE FROM alunos WHERE id = ?", id)
	return err
}
