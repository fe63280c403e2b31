package convert

// Identity 原样返回输入
type Identity struct{}

func (Identity) Convert(raw any) (any, error) {
	return raw, nil
}
