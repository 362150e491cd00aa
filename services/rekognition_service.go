package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectMenuText runs text detection on a base64-encoded data-URI image and
// returns the detected lines ordered by confidence, most confident first.
// A menu or storefront photo usually carries the restaurant name as its most
// prominent line.
func (r *RekognitionService) DetectMenuText(base64Img string) ([]string, error) {
	if !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	parts := strings.SplitN(base64Img, ",", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: data},
	})
	if err != nil {
		return nil, err
	}

	type line struct {
		text       string
		confidence float32
	}
	var lines []line
	for _, d := range out.TextDetections {
		if d.Type != types.TextTypesLine || d.DetectedText == nil {
			continue
		}
		conf := float32(0)
		if d.Confidence != nil {
			conf = *d.Confidence
		}
		lines = append(lines, line{text: *d.DetectedText, confidence: conf})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].confidence > lines[j].confidence
	})

	texts := make([]string, 0, len(lines))
	for _, l := range lines {
		texts = append(texts, l.text)
	}
	return texts, nil
}
