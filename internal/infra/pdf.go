package infra

// pdf.go — Boleto slip generation using go-pdf/fpdf.
// A4 page with:
//   - Condominium name header
//   - Unit identification and billing period
//   - Breakdown table (water, electricity, gas, apportioned expenses)
//   - Bold total and due date
//
// The output file is saved to storagePath/boleto_{cobranca_id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/go-pdf/fpdf"
)

// GerarBoletoPDF renders the slip for one charge. storagePath is created if
// needed; the absolute path of the generated file is returned.
func GerarBoletoPDF(cobranca *model.Cobranca, unidade *model.Unidade, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("boleto_%s.pdf", cobranca.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	condNome := "Condominio"
	if unidade.Condominio != nil {
		condNome = unidade.Condominio.Nome
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, condNome, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Boleto de Cobranca", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Unit and period ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, "Unidade: "+unidade.Identificacao(), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Periodo: %02d/%d", cobranca.MesReferencia, cobranca.AnoReferencia), "", 1, "R", false, 0, "")
	if unidade.Proprietario != nil && *unidade.Proprietario != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, "Responsavel: "+*unidade.Proprietario, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Breakdown table ──────────────────────────────────────────────────────
	col1 := contentW * 0.50 // item
	col2 := contentW * 0.28 // detail
	col3 := contentW * 0.22 // value

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Consumo", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Valor", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	det := cobranca.Detalhamento
	if det.Agua != nil {
		pdf.CellFormat(col1, 6, "Agua", "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, det.Agua.ConsumoM3.StringFixed(2)+" m3", "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "R$ "+det.Agua.Valor.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if det.Energia != nil {
		label := "Energia"
		if det.Energia.Garagens != "" {
			label = "Energia (garagem " + det.Energia.Garagens + ")"
		}
		pdf.CellFormat(col1, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, det.Energia.ConsumoKWh.StringFixed(2)+" kWh", "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "R$ "+det.Energia.Valor.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if det.Gas != nil {
		pdf.CellFormat(col1, 6, "Gas", "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, det.Gas.Consumo.StringFixed(2)+" "+det.Gas.UnidadeMedida, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "R$ "+det.Gas.Valor.StringFixed(2), "", 1, "R", false, 0, "")
	}
	for _, despesa := range det.Despesas {
		label := despesa.Descricao
		if len(label) > 40 {
			label = label[:39] + "…"
		}
		pdf.CellFormat(col1, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, despesa.Categoria, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "R$ "+despesa.Valor.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total and due date ───────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2, 8, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 8, "R$ "+cobranca.Valor.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Vencimento: "+cobranca.Vencimento.Format("02/01/2006"), "", 1, "L", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Em caso de duvida procure a administracao do condominio.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
