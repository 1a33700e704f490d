package client

import "strconv"

// HealthResponse mirrors GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// CatalogueProduct is one line of a laboratory's product catalogue.
type CatalogueProduct struct {
	ID          int     `json:"id"`
	LabID       int     `json:"laboratoire_id"`
	CIPCode     string  `json:"code_cip"`
	ACLCode     string  `json:"code_acl"`
	TradeName   string  `json:"nom_commercial"`
	PriceHT     float64 `json:"prix_ht"`
	RebatePct   float64 `json:"remise_pct"`
	PassbackPct float64 `json:"remontee_pct"`
	Active      bool    `json:"actif"`
}

// RowID returns the stable identity key used by the table renderer.
func (p CatalogueProduct) RowID() string { return "cat-" + strconv.Itoa(p.ID) }

// SaleRow is one imported pharmacy sales line.
type SaleRow struct {
	ID           int     `json:"id"`
	ImportID     int     `json:"import_id"`
	CIPCode      string  `json:"code_cip_achete"`
	CurrentLab   string  `json:"labo_actuel"`
	Designation  string  `json:"designation"`
	AnnualQty    int     `json:"quantite_annuelle"`
	UnitPrice    float64 `json:"prix_achat_unitaire"`
	AnnualAmount float64 `json:"montant_annuel"`
}

// RowID returns the stable identity key used by the table renderer.
func (s SaleRow) RowID() string { return "vte-" + strconv.Itoa(s.ID) }

// MatchRow is one product-matching result linking a sales line to catalogue
// candidates.
type MatchRow struct {
	ProductID   int     `json:"produit_id"`
	Designation string  `json:"designation"`
	Status      string  `json:"statut"` // unique | ambiguous | new
	Candidates  int     `json:"candidats_count"`
	BestScore   float64 `json:"best_score"`
}

// RowID returns the stable identity key used by the table renderer.
func (m MatchRow) RowID() string { return "match-" + strconv.Itoa(m.ProductID) }
