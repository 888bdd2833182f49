package s3

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/supermatrix/blobstore"
)

// CommitStore keeps every Put as a new immutable version and tracks the
// latest version of each name in DynamoDB.
//
// Version blobs are written to the wrapped store first; a DynamoDB
// conditional write then publishes them. Readers therefore never see a
// version whose blob is missing, and concurrent writers of the same name
// cannot both win a version number.
//
// Table schema:
//   - Partition key: base_uri (string) - baseURI joined with the blob name
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name supermatrix-commits \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type CommitStore struct {
	store     blobstore.BlobStore
	ddbClient DDBClient
	tableName string
	baseURI   string
}

var _ blobstore.BlobStore = (*CommitStore)(nil)

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ DDBClient = (*dynamodb.Client)(nil)

// ErrConcurrentModification is returned when another writer committed the
// same version first.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// versionSep separates a name from its version suffix in blob names.
const versionSep = ".v"

// NewCommitStore creates a commit store over store (typically a *Store).
// baseURI namespaces the DynamoDB items, e.g. "s3://bucket/prefix".
func NewCommitStore(store blobstore.BlobStore, ddbClient DDBClient, tableName, baseURI string) *CommitStore {
	return &CommitStore{
		store:     store,
		ddbClient: ddbClient,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

func (s *CommitStore) partition(name string) string {
	return s.baseURI + "#" + name
}

// Commit stores data as the next version of name and returns that version.
func (s *CommitStore) Commit(ctx context.Context, name string, data []byte) (uint64, error) {
	current, _, err := s.latest(ctx, name)
	if err != nil {
		return 0, err
	}
	version := current + 1

	token := make([]byte, 8)
	if _, err := rand.Read(token); err != nil {
		return 0, err
	}
	blob := fmt.Sprintf("%s%s%020d-%s", name, versionSep, version, hex.EncodeToString(token))

	if err := s.store.Put(ctx, blob, data); err != nil {
		return 0, err
	}

	_, err = s.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"base_uri":  &types.AttributeValueMemberS{Value: s.partition(name)},
			"version":   &types.AttributeValueMemberN{Value: strconv.FormatUint(version, 10)},
			"blob_path": &types.AttributeValueMemberS{Value: blob},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		_ = s.store.Delete(ctx, blob)

		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentModification
		}
		return 0, fmt.Errorf("failed to commit version to DynamoDB: %w", err)
	}

	return version, nil
}

// Latest returns the newest committed version of name and its blob name.
// It returns blobstore.ErrNotFound if name was never committed.
func (s *CommitStore) Latest(ctx context.Context, name string) (uint64, string, error) {
	version, blob, err := s.latest(ctx, name)
	if err != nil {
		return 0, "", err
	}
	if version == 0 {
		return 0, "", blobstore.ErrNotFound
	}
	return version, blob, nil
}

func (s *CommitStore) latest(ctx context.Context, name string) (uint64, string, error) {
	resp, err := s.ddbClient.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: s.partition(name)},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}
	if len(resp.Items) == 0 {
		return 0, "", nil
	}
	return parseItem(resp.Items[0])
}

func parseItem(item map[string]types.AttributeValue) (uint64, string, error) {
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	pathAttr, ok := item["blob_path"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid blob_path attribute in DynamoDB")
	}
	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}
	return version, pathAttr.Value, nil
}

// Put commits data as a new version of name.
func (s *CommitStore) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.Commit(ctx, name, data)
	return err
}

// Get returns the latest version of name.
func (s *CommitStore) Get(ctx context.Context, name string) ([]byte, error) {
	_, blob, err := s.Latest(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, blob)
}

// Delete removes every version of name and its commit records.
func (s *CommitStore) Delete(ctx context.Context, name string) error {
	paginator := dynamodb.NewQueryPaginator(s.ddbClient, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: s.partition(name)},
		},
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to query DynamoDB: %w", err)
		}
		for _, item := range page.Items {
			_, blob, err := parseItem(item)
			if err != nil {
				return err
			}
			if err := s.store.Delete(ctx, blob); err != nil {
				return err
			}
			if _, err := s.ddbClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"base_uri": item["base_uri"],
					"version":  item["version"],
				},
			}); err != nil {
				return fmt.Errorf("failed to delete commit record: %w", err)
			}
		}
	}
	return nil
}

// List returns the names with at least one stored version.
func (s *CommitStore) List(ctx context.Context, prefix string) ([]string, error) {
	blobs, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, blob := range blobs {
		i := strings.LastIndex(blob, versionSep)
		if i < 0 {
			continue
		}
		names = append(names, blob[:i])
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
