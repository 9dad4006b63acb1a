package usecase

import (
	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
)

// Reconcile classifica cada membro do roster como "reported" ou "missing".
// Um membro é "reported" quando seu ID existe em totals, mesmo com zero horas.
func Reconcile(roster entity.Roster, totals entity.UserTotals) entity.Reconciliation {
	result := entity.Reconciliation{
		Missing:  []entity.Member{},
		Reported: []entity.ReportedMember{},
	}

	for _, member := range roster.Members() {
		hours, ok := totals[member.ID]
		if !ok {
			result.Missing = append(result.Missing, member)
			continue
		}
		result.Reported = append(result.Reported, entity.ReportedMember{Member: member, Hours: hours})
	}

	return result
}
