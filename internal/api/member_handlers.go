package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"academia-backend/internal/models"
)

// enrollMember handles POST /api/alunos/cadastrar. The form is forwarded to
// the insert as-is; the table constraints are the only gate.
func (h *Handlers) enrollMember(c echo.Context) error {
	var req models.EnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"erro": "Requisição inválida",
		})
	}

	if _, err := h.members.Create(c.Request().Context(), &req); err != nil {
		c.Logger().Error("enroll error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"erro": "Erro ao cadastrar aluno",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sucesso":  true,
		"mensagem": "Aluno cadastrado com sucesso!",
	})
}

// listMembers handles GET /api/admin/alunos
func (h *Handlers) listMembers(c echo.Context) error {
	members, err := h.members.List(c.Request().Context())
	if err != nil {
		c.Logger().Error("list members error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"erro": "Erro ao buscar alunos",
		})
	}

	return c.JSON(http.StatusOK, members)
}

// deleteMember handles DELETE /api/admin/alunos/:id. Deleting an id that
// does not exist still reports success.
func (h *Handlers) deleteMember(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"erro": "Erro ao excluir aluno",
		})
	}

	if err := h.members.Delete(c.Request().Context(), id); err != nil {
		c.Logger().Error("delete member error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"erro": "Erro ao excluir aluno",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{"sucesso": true})
}
