package tasks

import (
	"context"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/models"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskMongoRepository struct {
	Collection *mongo.Collection
}

func NewTaskMongoRepository(db *mongo.Client, dbName string) contracts.TaskRepository {
	return &TaskMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTasks),
	}
}

func (repo *TaskMongoRepository) CreateTask(ctx context.Context, taskModel *models.Task) (taskID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, taskModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TaskMongoRepository) FindDueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error) {
	filter := bson.M{
		"date": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, exceptions.ErrMongoDBCursorIteration(err)
	}
	return tasks, nil
}

func (repo *TaskMongoRepository) MarkNotified(ctx context.Context, taskID string) error {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"notified": true}}

	if _, err := repo.Collection.UpdateOne(ctx, filter, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
