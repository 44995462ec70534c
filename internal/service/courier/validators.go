package courier

func isValidCourierID(id int64) bool {
	return id > 0
}
