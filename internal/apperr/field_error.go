package apperr

// GlobalKey 保留給非欄位錯誤訊息
const GlobalKey = "_global"

// FieldErrorMap 欄位名稱對應錯誤訊息
// 每次提交都重建，成功後丟棄
type FieldErrorMap map[string]string

func (m FieldErrorMap) HasErrors() bool {
	return len(m) > 0
}

func (m FieldErrorMap) Global() string {
	return m[GlobalKey]
}

func Single(field, message string) FieldErrorMap {
	return FieldErrorMap{field: message}
}

func Global(message string) FieldErrorMap {
	return FieldErrorMap{GlobalKey: message}
}
