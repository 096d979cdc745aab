package store

import (
	"context"
	"fmt"

	"dealerhub/internal/database"
	"dealerhub/internal/model"
)

func CountCarMakes(ctx context.Context, db database.DB) (int, error) {
	row := db.QueryRow(ctx, `SELECT count(*) FROM car_makes`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("CountCarMakes: %w", err)
	}
	return count, nil
}

// UpsertCarMake 以品牌名稱為鍵寫入，重複時更新描述並回傳既有 id
// 種子載入因此可重入，併發執行不會產生重複品牌
func UpsertCarMake(ctx context.Context, db database.DB, m *model.CarMake) (*model.CarMake, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO car_makes (name, description)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		 RETURNING id`,
		m.Name,
		m.Description,
	)
	if err := row.Scan(&m.ID); err != nil {
		return nil, fmt.Errorf("UpsertCarMake: %w", err)
	}
	return m, nil
}

// UpsertCarModel 寫入型號，(make_id, name, year) 重複時不動作
func UpsertCarModel(ctx context.Context, db database.DB, m *model.CarModel) error {
	_, err := db.Exec(ctx,
		`INSERT INTO car_models (make_id, name, type, year)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (make_id, name, year) DO NOTHING`,
		m.MakeID,
		m.Name,
		m.Type,
		m.Year,
	)
	if err != nil {
		return fmt.Errorf("UpsertCarModel: %w", err)
	}
	return nil
}

// ListCarEntries 回傳所有型號與其品牌名稱，以型號 id 排序保證穩定順序
func ListCarEntries(ctx context.Context, db database.DB) ([]model.CarEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT cm.name, mk.name
		 FROM car_models cm
		 JOIN car_makes mk ON mk.id = cm.make_id
		 ORDER BY cm.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCarEntries: %w", err)
	}
	defer rows.Close()

	var entries []model.CarEntry
	for rows.Next() {
		var e model.CarEntry
		if err := rows.Scan(&e.CarModel, &e.CarMake); err != nil {
			return nil, fmt.Errorf("ListCarEntries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCarEntries: %w", err)
	}
	return entries, nil
}
