package usecase

import (
	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
)

// Aggregate soma as horas por usuário e por projeto.
// Somente entradas de membros do roster são consideradas; as demais são ignoradas
// nos dois resultados.
func Aggregate(entries []entity.TimeEntry, roster entity.Roster) (entity.UserTotals, *entity.ProjectTotals) {
	userTotals := entity.UserTotals{}
	projectTotals := entity.NewProjectTotals()

	for _, entry := range entries {
		if !roster.Contains(entry.UserID) {
			continue
		}

		if current, ok := userTotals[entry.UserID]; ok {
			userTotals[entry.UserID] = current.Add(entry.Hours)
		} else {
			userTotals[entry.UserID] = entry.Hours
		}

		projectTotals.Add(entry.ProjectName, entry.Hours)
	}

	return userTotals, projectTotals
}
