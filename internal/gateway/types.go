package gateway

import (
	"github.com/goccy/go-json"
)

// Dealer 表示 dealer service 回傳的單一經銷商
// 已知欄位以結構欄位呈現，其餘欄位保留在 Extra 中原樣回傳
type Dealer struct {
	ID        int    `json:"id"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
	Zip       string `json:"zip"`
	ShortName string `json:"short_name"`
	FullName  string `json:"full_name"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Review 表示 dealer service 回傳的單一評論
// Sentiment 由 sentiment analyzer 另行標注，分類失敗時為 null
type Review struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Dealership   int    `json:"dealership"`
	Review       string `json:"review"`
	Purchase     bool   `json:"purchase"`
	PurchaseDate string `json:"purchase_date"`
	CarMake      string `json:"car_make"`
	CarModel     string `json:"car_model"`
	CarYear      int    `json:"car_year"`

	Sentiment *string `json:"sentiment"`

	Extra map[string]json.RawMessage `json:"-"`
}

// splitKnown 解出已知欄位並把剩餘欄位收進 extra map
func splitKnown(data []byte, known map[string]any) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for key, dst := range known {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return nil, err
		}
		delete(raw, key)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// mergeKnown 以 extra map 為底合併已知欄位後序列化
func mergeKnown(extra map[string]json.RawMessage, known map[string]any) ([]byte, error) {
	out := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	return json.Marshal(out)
}

func (d *Dealer) UnmarshalJSON(data []byte) error {
	type plain Dealer
	var p plain
	extra, err := splitKnown(data, map[string]any{
		"id":         &p.ID,
		"city":       &p.City,
		"state":      &p.State,
		"address":    &p.Address,
		"zip":        &p.Zip,
		"short_name": &p.ShortName,
		"full_name":  &p.FullName,
	})
	if err != nil {
		return err
	}
	p.Extra = extra
	*d = Dealer(p)
	return nil
}

func (d Dealer) MarshalJSON() ([]byte, error) {
	return mergeKnown(d.Extra, map[string]any{
		"id":         d.ID,
		"city":       d.City,
		"state":      d.State,
		"address":    d.Address,
		"zip":        d.Zip,
		"short_name": d.ShortName,
		"full_name":  d.FullName,
	})
}

func (r *Review) UnmarshalJSON(data []byte) error {
	type plain Review
	var p plain
	extra, err := splitKnown(data, map[string]any{
		"id":            &p.ID,
		"name":          &p.Name,
		"dealership":    &p.Dealership,
		"review":        &p.Review,
		"purchase":      &p.Purchase,
		"purchase_date": &p.PurchaseDate,
		"car_make":      &p.CarMake,
		"car_model":     &p.CarModel,
		"car_year":      &p.CarYear,
		"sentiment":     &p.Sentiment,
	})
	if err != nil {
		return err
	}
	p.Extra = extra
	*r = Review(p)
	return nil
}

func (r Review) MarshalJSON() ([]byte, error) {
	return mergeKnown(r.Extra, map[string]any{
		"id":            r.ID,
		"name":          r.Name,
		"dealership":    r.Dealership,
		"review":        r.Review,
		"purchase":      r.Purchase,
		"purchase_date": r.PurchaseDate,
		"car_make":      r.CarMake,
		"car_model":     r.CarModel,
		"car_year":      r.CarYear,
		"sentiment":     r.Sentiment,
	})
}
