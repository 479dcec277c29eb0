package grpcclient

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/face-liveness/internal/classifier"
	"github.com/example/face-liveness/internal/logging"
	proto "github.com/example/face-liveness/proto"
)

// DialClassifier returns a ready-to-use gRPC client for the liveness
// classifier service.
func DialClassifier(ctx context.Context, addr string, logger *zap.Logger) (classifier.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_classifier", "", err)
		logger.Error("failed to dial classifier", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewLivenessClassifierClient(conn)
	return &grpcClassifier{client: client, logger: logger}, conn, nil
}

type grpcClassifier struct {
	client proto.LivenessClassifierClient
	logger *zap.Logger
}

// NewClassifier wraps an existing stub. Used by tests and by callers that
// manage their own connection.
func NewClassifier(client proto.LivenessClassifierClient, logger *zap.Logger) classifier.Client {
	return &grpcClassifier{client: client, logger: logger}
}

func (g *grpcClassifier) Classify(ctx context.Context, sessionID string, frameIndex int, image []byte) (*classifier.FrameResult, error) {
	resp, err := g.client.ClassifyFrame(ctx, &proto.ClassifyFrameRequest{
		SessionId:  sessionID,
		FrameIndex: int32(frameIndex),
		ImageData:  image,
	})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.classify_frame", sessionID, err)
		g.logger.Error("classifier call failed", zap.Error(wrapped), zap.Int("frame_index", frameIndex))
		return nil, wrapped
	}

	result := &classifier.FrameResult{
		Confidence:   float64(resp.GetConfidence()),
		QualityScore: float64(resp.GetQualityScore()),
	}
	switch resp.GetLabel() {
	case "live":
		result.Prediction = classifier.PredictionLive
	case "spoof":
		result.Prediction = classifier.PredictionSpoof
	default:
		err := fmt.Errorf("classifier returned unknown label %q", resp.GetLabel())
		return nil, logging.NewOperationError("grpcclient.classify_frame", sessionID, err)
	}
	if err := result.Validate(); err != nil {
		return nil, logging.NewOperationError("grpcclient.classify_frame", sessionID, err)
	}
	return result, nil
}
