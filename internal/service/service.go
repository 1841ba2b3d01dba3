package service

type Services struct {
	Marks *MarksService
}

func NewServices(table *LookupTable) *Services {
	return &Services{
		Marks: NewMarksService(table),
	}
}
