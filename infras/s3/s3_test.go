package s3_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/infras/s3"
	"frontdesk/infras/s3/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPutReport(t *testing.T) {
	tests := []struct {
		name         string
		publicDomain string
		bucket       string
		putErr       error
		expectPut    bool
		expectedURL  string
		expectedErr  error
	}{
		{
			name:         "uploads to public domain",
			publicDomain: "https://cdn.hotel.test/",
			bucket:       "reports",
			expectPut:    true,
			expectedURL:  "https://cdn.hotel.test/revenue/export.csv",
		},
		{
			name:        "falls back to api endpoint",
			bucket:      "reports",
			expectPut:   true,
			expectedURL: "https://s3.hotel.test/reports/revenue/export.csv",
		},
		{
			name:        "missing bucket",
			expectedErr: s3.ErrBucketNotConfigured,
		},
		{
			name:      "upload failure",
			bucket:    "reports",
			expectPut: true,
			putErr:    errors.New("access denied"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockObjectPutter(ctrl)

			cfg := &config.Config{}
			cfg.External.S3.BucketName = tt.bucket
			cfg.External.S3.PublicDomain = tt.publicDomain
			cfg.External.S3.APIEndpoint = "https://s3.hotel.test"

			if tt.expectPut {
				client.EXPECT().
					PutObject(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input *awsS3.PutObjectInput, _ ...func(*awsS3.Options)) (*awsS3.PutObjectOutput, error) {
						assert.Equal(t, "reports", aws.ToString(input.Bucket))
						assert.Equal(t, "revenue/export.csv", aws.ToString(input.Key))
						assert.Equal(t, "text/csv", aws.ToString(input.ContentType))
						assert.Equal(t, int64(9), aws.ToInt64(input.ContentLength))

						body, err := io.ReadAll(input.Body)
						assert.NoError(t, err)
						assert.Equal(t, "date,rev\n", string(body))

						return &awsS3.PutObjectOutput{}, tt.putErr
					})
			}

			store := s3.NewWithClient(client, cfg, otelMocks.NewOtel())

			url, err := store.PutReport(context.Background(), "revenue", "export.csv", "text/csv", []byte("date,rev\n"))

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.putErr != nil:
				assert.ErrorContains(t, err, "access denied")
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedURL, url)
			}
		})
	}
}

func TestDeleteReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjectPutter(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "reports"

	client.EXPECT().
		DeleteObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *awsS3.DeleteObjectInput, _ ...func(*awsS3.Options)) (*awsS3.DeleteObjectOutput, error) {
			assert.Equal(t, "revenue/old.csv", aws.ToString(input.Key))

			return &awsS3.DeleteObjectOutput{}, nil
		})

	store := s3.NewWithClient(client, cfg, otelMocks.NewOtel())

	assert.NoError(t, store.DeleteReport(context.Background(), "revenue", "old.csv"))
}
