package domain

type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
