package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"tapCalc/internal/domain"
	"tapCalc/internal/ports"
)

var _ ports.IEvaluationRepository = (*EvaluationRepo)(nil)

// evaluationDoc — документ в коллекции evaluations (без ID — в домене ID int
// для совместимости с PG, при чтении оставляем 0).
type evaluationDoc struct {
	SessionID string    `bson:"session_id"`
	Operand1  float64   `bson:"operand1"`
	Operand2  float64   `bson:"operand2"`
	Operator  string    `bson:"operator"`
	Result    float64   `bson:"result"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

// EvaluationRepo реализует ports.IEvaluationRepository для MongoDB.
type EvaluationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewEvaluationRepo возвращает репозиторий вычислений.
func NewEvaluationRepo(client *Client, log *slog.Logger) *EvaluationRepo {
	return &EvaluationRepo{client: client, log: log}
}

// SaveEvaluation сохраняет вычисление в коллекцию.
func (r *EvaluationRepo) SaveEvaluation(ctx context.Context, ev domain.Evaluation) error {
	doc := evaluationDoc{
		SessionID: ev.SessionID,
		Operand1:  ev.Operand1,
		Operand2:  ev.Operand2,
		Operator:  ev.Operator,
		Result:    ev.Result,
		Message:   ev.Message,
		CreatedAt: ev.Timestamp,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveEvaluation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю вычислений (последние сначала).
func (r *EvaluationRepo) GetHistory(ctx context.Context) ([]domain.Evaluation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []evaluationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Evaluation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Evaluation{
			ID:        0,
			SessionID: d.SessionID,
			Operand1:  d.Operand1,
			Operand2:  d.Operand2,
			Operator:  d.Operator,
			Result:    d.Result,
			Message:   d.Message,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *EvaluationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
