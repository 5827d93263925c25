package utils

// StringInSlice 检查字符串是否在切片中
func StringInSlice(str string, list []string) bool {
	for _, v := range list {
		if v == str {
			return true
		}
	}
	return false
}

// SumInts 求整数切片之和
func SumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
