package contracts

import "context"

type Storage interface {
	UploadObject(ctx context.Context, objectName string, data []byte) (url string, err error)
}
