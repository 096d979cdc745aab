package catalog

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"dealerhub/internal/database"
	"dealerhub/internal/model"
	"dealerhub/internal/store"

	"github.com/goccy/go-json"
)

//go:embed fixtures/cars.json
var fixturesFS embed.FS

type fixtureModel struct {
	Name string        `json:"name"`
	Type model.CarType `json:"type"`
	Year int           `json:"year"`
}

type fixtureMake struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Models      []fixtureModel `json:"models"`
}

type fixtureFile struct {
	Makes []fixtureMake `json:"makes"`
}

// seedMu 序列化同一進程內的種子載入
// 跨進程的併發由 car_makes/car_models 的唯一約束與 upsert 語意吸收
var seedMu sync.Mutex

// Ensure 在 catalog 為空時從內嵌 fixture 載入車款資料
// 可重複呼叫；已有資料時不做任何寫入
func Ensure(ctx context.Context, db database.DB) error {
	seedMu.Lock()
	defer seedMu.Unlock()

	count, err := store.CountCarMakes(ctx, db)
	if err != nil {
		return fmt.Errorf("catalog.Ensure: %w", err)
	}
	if count > 0 {
		return nil
	}
	return seed(ctx, db)
}

func seed(ctx context.Context, db database.DB) error {
	raw, err := fixturesFS.ReadFile("fixtures/cars.json")
	if err != nil {
		return fmt.Errorf("catalog.seed: %w", err)
	}

	var fixture fixtureFile
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("catalog.seed: %w", err)
	}

	for _, mk := range fixture.Makes {
		carMake, err := store.UpsertCarMake(ctx, db, &model.CarMake{
			Name:        mk.Name,
			Description: mk.Description,
		})
		if err != nil {
			return fmt.Errorf("catalog.seed: %w", err)
		}
		for _, md := range mk.Models {
			if err := store.UpsertCarModel(ctx, db, &model.CarModel{
				MakeID: carMake.ID,
				Name:   md.Name,
				Type:   md.Type,
				Year:   md.Year,
			}); err != nil {
				return fmt.Errorf("catalog.seed: %w", err)
			}
		}
	}
	return nil
}
