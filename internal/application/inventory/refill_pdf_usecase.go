package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Vitrinas-api/internal/application/ports"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
)

// RefillPDFUseCase descarga la lista de reposición como PDF.
type RefillPDFUseCase struct {
	stock    *StockUseCase
	renderer ports.RefillPDFRenderer
	now      func() time.Time
}

func NewRefillPDFUseCase(stock *StockUseCase, renderer ports.RefillPDFRenderer) *RefillPDFUseCase {
	return &RefillPDFUseCase{stock: stock, renderer: renderer, now: time.Now}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *RefillPDFUseCase) Download(ctx context.Context, actor entity.Actor, vitrineID string) ([]byte, string, error) {
	list, err := uc.stock.RefillList(ctx, actor, vitrineID)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.renderer.RenderRefillList(ctx, list)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: lista de reposición: %w", err)
	}
	name := "auffuellliste-" + uc.now().Format("2006-01-02")
	if vitrineID != "" {
		name += "-" + vitrineID
	}
	return doc, name + ".pdf", nil
}
