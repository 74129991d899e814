// pkg/utils/location/location.go
package location

// Regions are the top-level administrative divisions listings are filed
// under.
var Regions = []string{
	"서울", "경기", "인천", "강원", "충북", "충남", "대전", "세종",
	"전북", "전남", "광주", "경북", "경남", "부산", "대구", "울산", "제주",
}

// Zonings are the 용도지역 designations from the planning act.
var Zonings = []string{
	"제1종전용주거", "제2종전용주거", "제1종일반주거", "제2종일반주거", "제3종일반주거",
	"준주거", "중심상업", "일반상업", "근린상업", "유통상업", "전용공업", "일반공업", "준공업",
	"보전녹지", "생산녹지", "자연녹지", "보전관리", "생산관리", "계획관리", "농림", "자연환경보전",
}

// LandCategories are the 28 cadastral 지목 classes.
var LandCategories = []string{
	"전", "답", "과수원", "목장용지", "임야", "광천지", "염전", "대", "공장용지", "학교용지",
	"주차장", "주유소용지", "창고용지", "도로", "철도용지", "제방", "하천", "구거", "유지",
	"양어장", "수도용지", "공원", "체육용지", "유원지", "종교용지", "사적지", "묘지", "잡종지",
}

// sigunguCodes maps district names to the 5-digit codes the building
// ledger keys on. Covers the agency's working area (경기/인천/서울 북서부).
var sigunguCodes = map[string]string{
	// 경기도
	"수원시장안구": "41111", "수원시권선구": "41113", "수원시팔달구": "41115", "수원시영통구": "41117",
	"성남시수정구": "41131", "성남시중원구": "41133", "성남시분당구": "41135",
	"의정부시": "41150", "안양시만안구": "41171", "안양시동안구": "41173",
	"부천시": "41190", "광명시": "41210", "평택시": "41220", "동두천시": "41250",
	"안산시상록구": "41271", "안산시단원구": "41273", "고양시덕양구": "41281",
	"고양시일산동구": "41285", "고양시일산서구": "41287", "과천시": "41290",
	"구리시": "41310", "남양주시": "41360", "오산시": "41370", "시흥시": "41390",
	"군포시": "41410", "의왕시": "41430", "하남시": "41450", "용인시처인구": "41461",
	"용인시기흥구": "41463", "용인시수지구": "41465", "파주시": "41480", "이천시": "41500",
	"안성시": "41550", "김포시": "41570", "화성시": "41590", "광주시": "41610",
	"양주시": "41630", "포천시": "41650", "여주시": "41670",
	"연천군": "41800", "가평군": "41820", "양평군": "41830",
	// 인천
	"인천중구": "28110", "인천동구": "28140", "인천미추홀구": "28177", "인천연수구": "28185",
	"인천남동구": "28200", "인천부평구": "28237", "인천계양구": "28245", "인천서구": "28260",
	// 서울
	"서울종로구": "11110", "서울중구": "11140", "서울용산구": "11170",
}

// SigunguCode looks up the ledger district code for a district name.
func SigunguCode(district string) (string, bool) {
	code, ok := sigunguCodes[district]
	return code, ok
}

// ValidRegion reports whether a region value is one of the known
// divisions.
func ValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}
