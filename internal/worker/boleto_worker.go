package worker

// boleto_worker.go
// Processes boleto jobs from QueueBoleto: renders the charge's PDF slip and,
// when the unit has a contact email, enqueues the delivery email.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/infra"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BoletoJobPayload is the job envelope sent to QueueBoleto.
type BoletoJobPayload struct {
	CobrancaID string `json:"cobranca_id"`
}

type BoletoWorker struct {
	cobrancaRepo   repository.CobrancaRepository
	unidadeRepo    repository.UnidadeRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewBoletoWorker(
	cobrancaRepo repository.CobrancaRepository,
	unidadeRepo repository.UnidadeRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
) *BoletoWorker {
	return &BoletoWorker{
		cobrancaRepo:   cobrancaRepo,
		unidadeRepo:    unidadeRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process renders one boleto:
//  1. Fetch the cobranca and its unidade (with condominio)
//  2. Generate the PDF slip
//  3. Store the path on the cobranca
//  4. Enqueue the delivery email when the unit has a contact address
func (w *BoletoWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload BoletoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("boleto_worker: invalid payload")
		return nil // malformed payloads never succeed, don't retry
	}

	cobrancaID, err := uuid.Parse(payload.CobrancaID)
	if err != nil {
		log.Error().Str("cobranca_id", payload.CobrancaID).Msg("boleto_worker: invalid cobranca_id")
		return nil
	}

	cobranca, err := w.cobrancaRepo.FindByID(ctx, cobrancaID)
	if err != nil {
		return fmt.Errorf("boleto_worker: cobranca %s: %w", payload.CobrancaID, err)
	}

	unidade, err := w.unidadeRepo.FindByID(ctx, cobranca.UnidadeID)
	if err != nil {
		return fmt.Errorf("boleto_worker: unidade %s: %w", cobranca.UnidadeID, err)
	}

	pdfPath, err := infra.GerarBoletoPDF(cobranca, unidade, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("boleto_worker: pdf: %w", err)
	}

	if err := w.cobrancaRepo.UpdatePDFPath(ctx, cobranca.ID, pdfPath); err != nil {
		return fmt.Errorf("boleto_worker: store pdf path: %w", err)
	}
	log.Info().Str("pdf", pdfPath).Str("cobranca_id", payload.CobrancaID).Msg("boleto_worker: PDF generated")

	if unidade.EmailResponsavel != nil && *unidade.EmailResponsavel != "" && w.dispatcher != nil {
		emailJob := EmailJobPayload{
			ToEmail: *unidade.EmailResponsavel,
			Subject: fmt.Sprintf("Boleto %02d/%d — Unidade %s", cobranca.MesReferencia, cobranca.AnoReferencia, unidade.Identificacao()),
			Body: fmt.Sprintf(
				"Segue em anexo o boleto do periodo %02d/%d.\nValor: R$ %s\nVencimento: %s",
				cobranca.MesReferencia, cobranca.AnoReferencia,
				cobranca.Valor.StringFixed(2), cobranca.Vencimento.Format("02/01/2006")),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *unidade.EmailResponsavel).Msg("boleto_worker: failed to enqueue email")
		}
	}

	return nil
}
