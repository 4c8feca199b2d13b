package pb

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName JSONコーデックのcontent-subtype
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec メッセージをJSONでエンコードするgRPCコーデック
type Codec struct{}

// Marshal メッセージをJSONにエンコード
func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal JSONをメッセージにデコード
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name コーデック名を返す
func (Codec) Name() string {
	return CodecName
}
