package apimodels

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей
}

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: StatusSuccess,
			Data:   data,
		},
		RowCount: rowCount,
	}
}
