package documents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

var (
	documentResolverInstance contracts.DocumentResolver
	onceDocumentResolver     sync.Once
)

type documentResolver struct {
	SadtClient     contracts.SadtClient
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewDocumentResolver(
	sadtClient contracts.SadtClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentResolver {
	onceDocumentResolver.Do(func() {
		documentResolverInstance = &documentResolver{
			SadtClient:     sadtClient,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return documentResolverInstance
}

// tierOutcome is definitive when the chain must stop: either a document was
// produced or the service stated none is required. Ambiguous failures
// (timeout, transport error) fall through to the next tier.
type tierOutcome struct {
	document *models.ResolvedDocument
}

type resolutionTier struct {
	name    string
	timeout time.Duration
	attempt func(ctx context.Context) (*tierOutcome, error)
}

func (r *documentResolver) Resolve(ctx context.Context, request *models.DocumentRequest) (*models.ResolvedDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("documentResolver.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingAppointmentTypeKey, request.AppointmentType),
	)

	switch RequiredDocumentFor(request.AppointmentType) {
	case constvars.RequiredDocumentSadt:
		return r.resolveSadt(ctx, request), nil
	case constvars.RequiredDocumentReceipt:
		// Receipt types never touch the SADT tiers.
		html, err := RenderReceiptHTML(request)
		if err != nil {
			return nil, err
		}
		return &models.ResolvedDocument{
			Kind:     constvars.DocumentKindLocalPreviewHTML,
			FileName: fmt.Sprintf("comprovante-%d.html", request.AppointmentID),
			HTML:     html,
		}, nil
	default:
		return &models.ResolvedDocument{Kind: constvars.DocumentKindNone}, nil
	}
}

// resolveSadt walks the fallback chain in strict order, stopping at the first
// definitive outcome. Tier 3 synthesizes locally and cannot fail, so the
// receptionist always leaves with something to hand the patient.
func (r *documentResolver) resolveSadt(ctx context.Context, request *models.DocumentRequest) *models.ResolvedDocument {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	tiers := []resolutionTier{
		{
			name:    constvars.DocumentTierRemoteCheck,
			timeout: time.Duration(r.InternalConfig.Sadt.CheckTimeoutInSeconds) * time.Second,
			attempt: func(tierCtx context.Context) (*tierOutcome, error) {
				required, err := r.SadtClient.PrecisaSadt(tierCtx, request.AppointmentID)
				if err != nil {
					return nil, err
				}
				if !required {
					return &tierOutcome{document: &models.ResolvedDocument{Kind: constvars.DocumentKindNone}}, nil
				}
				return r.generateRemote(tierCtx, request)
			},
		},
		{
			name:    constvars.DocumentTierRemoteGenerate,
			timeout: time.Duration(r.InternalConfig.Sadt.GenerateTimeoutInSeconds) * time.Second,
			attempt: func(tierCtx context.Context) (*tierOutcome, error) {
				return r.generateRemote(tierCtx, request)
			},
		},
		{
			name: constvars.DocumentTierLocalSynthesis,
			attempt: func(tierCtx context.Context) (*tierOutcome, error) {
				html, err := RenderSadtPreviewHTML(request)
				if err != nil {
					return nil, err
				}
				return &tierOutcome{document: &models.ResolvedDocument{
					Kind:     constvars.DocumentKindLocalPreviewHTML,
					FileName: fmt.Sprintf("sadt-previa-%d.html", request.AppointmentID),
					HTML:     html,
				}}, nil
			},
		},
	}

	for _, tier := range tiers {
		tierCtx := ctx
		var cancel context.CancelFunc
		if tier.timeout > 0 {
			tierCtx, cancel = context.WithTimeout(ctx, tier.timeout)
		}
		outcome, err := tier.attempt(tierCtx)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			r.Log.Warn("documentResolver.resolveSadt tier failed, falling through",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDocumentTierKey, tier.name),
				zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
				zap.Error(err),
			)
			continue
		}
		r.Log.Info("documentResolver.resolveSadt tier resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentTierKey, tier.name),
			zap.String(constvars.LoggingDocumentKindKey, outcome.document.Kind),
		)
		return outcome.document
	}

	// Unreachable while local synthesis stays infallible.
	return &models.ResolvedDocument{Kind: constvars.DocumentKindNone}
}

func (r *documentResolver) generateRemote(ctx context.Context, request *models.DocumentRequest) (*tierOutcome, error) {
	pdfBase64, err := r.SadtClient.GerarSadt(ctx, request)
	if err != nil {
		return nil, err
	}
	return &tierOutcome{document: &models.ResolvedDocument{
		Kind:      constvars.DocumentKindRemotePDF,
		FileName:  fmt.Sprintf("sadt-%d.pdf", request.AppointmentID),
		PDFBase64: pdfBase64,
	}}, nil
}
