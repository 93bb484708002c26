package application

import (
	"context"
	"fmt"

	"github.com/nasch/prestabanco_backend/internal/domain"
)

// DocumentUploader sube un documento a un almacenamiento externo y retorna su URL
type DocumentUploader interface {
	UploadDocument(ctx context.Context, prefix, name string, data []byte) (string, error)
}

// ArchivedDocument es un documento de una solicitud ya copiado al almacenamiento externo
type ArchivedDocument struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type DocumentArchiveService struct {
	loanRepo domain.LoanRepository
	uploader DocumentUploader
}

// NewDocumentArchiveService crea el servicio que archiva documentos de solicitudes
func NewDocumentArchiveService(loanRepo domain.LoanRepository, uploader DocumentUploader) *DocumentArchiveService {
	return &DocumentArchiveService{
		loanRepo: loanRepo,
		uploader: uploader,
	}
}

// ArchiveLoanDocuments copia los documentos presentes de una solicitud.
// Retorna nil, nil si la solicitud no existe.
func (s *DocumentArchiveService) ArchiveLoanDocuments(ctx context.Context, loanID int64) ([]ArchivedDocument, error) {
	loan, err := s.loanRepo.GetByID(loanID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, nil
	}

	prefix := fmt.Sprintf("loans/%d", loan.ID)
	archived := []ArchivedDocument{}
	for i, doc := range loan.Documents() {
		if !doc.Valid {
			continue
		}
		name := fmt.Sprintf("document%d", i+1)
		url, err := s.uploader.UploadDocument(ctx, prefix, name, doc.Data)
		if err != nil {
			return nil, fmt.Errorf("error al archivar %s: %w", name, err)
		}
		archived = append(archived, ArchivedDocument{Name: name, URL: url})
	}

	return archived, nil
}
