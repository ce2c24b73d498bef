package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/internal/money"
)

// CreateSettlement persists a new settlement. Settlements are
// append-only: no update or delete exists.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	var note any
	if settlement.Note != "" {
		note = settlement.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, paid_by, paid_to, amount_cents, group_id, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.PaidBy, settlement.PaidTo, money.Cents(settlement.Amount),
		nullable(settlement.GroupID), note, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	return nil
}

// ListSettlementsForUser returns settlements the user paid or received,
// newest first.
func (s *SQLiteStore) ListSettlementsForUser(ctx context.Context, userID string) ([]*models.Settlement, error) {
	return s.listSettlements(ctx,
		`SELECT s.id, s.paid_by, payer.name, s.paid_to, payee.name, s.amount_cents, s.group_id, g.name, s.note, s.created_at
		 FROM settlements s
		 JOIN users payer ON payer.id = s.paid_by
		 JOIN users payee ON payee.id = s.paid_to
		 LEFT JOIN groups g ON g.id = s.group_id
		 WHERE s.paid_by = ? OR s.paid_to = ?
		 ORDER BY s.created_at DESC`,
		userID, userID,
	)
}

// ListSettlementsByGroup returns a group's settlements, newest first.
func (s *SQLiteStore) ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	return s.listSettlements(ctx,
		`SELECT s.id, s.paid_by, payer.name, s.paid_to, payee.name, s.amount_cents, s.group_id, g.name, s.note, s.created_at
		 FROM settlements s
		 JOIN users payer ON payer.id = s.paid_by
		 JOIN users payee ON payee.id = s.paid_to
		 LEFT JOIN groups g ON g.id = s.group_id
		 WHERE s.group_id = ?
		 ORDER BY s.created_at DESC`,
		groupID,
	)
}

func (s *SQLiteStore) listSettlements(ctx context.Context, query string, args ...any) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var cents int64
		var groupID, groupName, note sql.NullString
		if err := rows.Scan(&settlement.ID, &settlement.PaidBy, &settlement.PaidByName,
			&settlement.PaidTo, &settlement.PaidToName, &cents, &groupID, &groupName,
			&note, &settlement.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlement.Amount = money.FromCents(cents)
		settlement.GroupID = groupID.String
		settlement.GroupName = groupName.String
		settlement.Note = note.String
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}
	return settlements, nil
}
