package model

// CarType 表示車款的類型
type CarType string

const (
	TypeSUV   CarType = "SUV"
	TypeSedan CarType = "Sedan"
	TypeWagon CarType = "Wagon"
	TypeSport CarType = "Sport"
)

type CarMake struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

type CarModel struct {
	ID     int     `db:"id" json:"id"`
	MakeID int     `db:"make_id" json:"make_id"`
	Name   string  `db:"name" json:"name"`
	Type   CarType `db:"type" json:"type"`
	Year   int     `db:"year" json:"year"`
}

// CarEntry 是型號與品牌的查詢結果（join car_models 與 car_makes）
type CarEntry struct {
	CarModel string `json:"CarModel"`
	CarMake  string `json:"CarMake"`
}
