// cmd/seed/districts.go
package main

// Hualien County administrative divisions, township down to village level.
type townshipVillages struct {
	Township string
	Villages []string
}

var hualienDistricts = []townshipVillages{
	{Township: "花蓮市", Villages: []string{"主權里", "主安里", "主農里", "主力里", "主學里", "主工里", "主商里", "民孝里", "民政里", "民生里", "民心里", "民運里", "民立里", "民樂里", "民勤里", "民享里", "民有里", "民治里", "國聯里", "國光里", "國威里", "國福里", "國強里", "國慶里", "國防里", "國裕里", "國安里", "國盛里", "國華里", "國魂里", "國富里", "國興里", "國廣里", "北濱里", "北昌里", "建國里", "復興里"}},
	{Township: "吉安鄉", Villages: []string{"北昌村", "勝安村", "宜昌村", "南昌村", "吉安村", "永興村", "慶豐村", "福興村", "稀仁村", "東昌村", "永安村", "仁安村", "仁里村", "光華村", "太昌村", "干城村", "仁和村", "南華村"}},
	{Township: "新城鄉", Villages: []string{"新城村", "北埔村", "康樂村", "嘉里村", "嘉新村", "佳林村", "順安村", "大漢村"}},
	{Township: "秀林鄉", Villages: []string{"秀林村", "佳民村", "景美村", "加灣村", "崇德村", "富世村", "銅門村", "文蘭村", "水源村"}},
	{Township: "壽豐鄉", Villages: []string{"壽豐村", "共和村", "志學村", "平和村", "池南村", "豐山村", "豐坪村", "豐裡村", "月眉村", "水璉村", "鹽寮村", "樹湖村", "米棧村", "光榮村"}},
	{Township: "鳳林鎮", Villages: []string{"鳳信里", "鳳義里", "鳳仁里", "鳳禮里", "鳳智里", "大榮里", "長橋里", "北林里", "南平里", "林榮里", "森榮里", "山興里"}},
	{Township: "光復鄉", Villages: []string{"大全村", "大同村", "大安村", "大平村", "大華村", "大進村", "大興村", "大馬村", "大富村", "大豐村", "大農村", "東富村", "南富村", "北富村", "西富村"}},
	{Township: "豐濱鄉", Villages: []string{"豐濱村", "港口村", "靜浦村", "磯崎村", "新社村"}},
	{Township: "瑞穗鄉", Villages: []string{"瑞穗村", "瑞美村", "瑞良村", "瑞北村", "瑞祥村", "舞鶴村", "鶴岡村", "奇美村", "富興村", "富民村", "富源村"}},
	{Township: "萬榮鄉", Villages: []string{"西林村", "見晴村", "萬榮村", "明利村", "紅葉村", "馬遠村"}},
	{Township: "玉里鎮", Villages: []string{"玉里里", "國武里", "中城里", "民生里", "中山里", "大同里", "長良里", "永昌里", "源城里", "春日里", "東豐里", "樂合里", "松浦里", "觀音里", "三民里", "泰林里"}},
	{Township: "卓溪鄉", Villages: []string{"卓清村", "卓樂村", "立山村", "崙山村", "太平村", "古風村"}},
	{Township: "富里鄉", Villages: []string{"富里村", "明里村", "東里村", "萬寧村", "新興村", "竹田村", "石牌村", "永豐村", "學田村", "羅山村", "豐南村", "吳江村", "富南村"}},
}

type optionSeed struct {
	Category string
	Value    string
	Label    string
}

var defaultOptions = []optionSeed{
	// 案件類型
	{Category: "caseType", Value: "petition", Label: "陳情協調"},
	{Category: "caseType", Value: "inspection", Label: "公共建設會勘"},
	{Category: "caseType", Value: "legal", Label: "法律諮詢"},
	{Category: "caseType", Value: "administrative", Label: "行政諮詢"},
	{Category: "caseType", Value: "other", Label: "其他"},

	// 案件類別
	{Category: "caseCategory", Value: "labor", Label: "勞資糾紛"},
	{Category: "caseCategory", Value: "traffic_ticket", Label: "交通罰單"},
	{Category: "caseCategory", Value: "medical", Label: "醫療爭議"},
	{Category: "caseCategory", Value: "land", Label: "土地徵收"},
	{Category: "caseCategory", Value: "road", Label: "道路問題"},
	{Category: "caseCategory", Value: "drainage", Label: "水溝排水"},
	{Category: "caseCategory", Value: "streetlight", Label: "路燈照明"},
	{Category: "caseCategory", Value: "traffic_signal", Label: "交通號誌"},
	{Category: "caseCategory", Value: "park", Label: "公園設施"},
	{Category: "caseCategory", Value: "noise", Label: "噪音問題"},
	{Category: "caseCategory", Value: "neighbor", Label: "鄰里糾紛"},
	{Category: "caseCategory", Value: "welfare", Label: "社會福利"},
	{Category: "caseCategory", Value: "other", Label: "其他"},

	// 進度動作類型
	{Category: "actionType", Value: "coordination", Label: "協調會"},
	{Category: "actionType", Value: "phone", Label: "電話追蹤"},
	{Category: "actionType", Value: "site_visit", Label: "現場會勘"},
	{Category: "actionType", Value: "document", Label: "公文往返"},
	{Category: "actionType", Value: "meeting", Label: "會議討論"},
	{Category: "actionType", Value: "other", Label: "其他"},

	// 職業身分
	{Category: "occupation", Value: "business_owner", Label: "中小企業主"},
	{Category: "occupation", Value: "worker", Label: "勞工"},
	{Category: "occupation", Value: "civil_servant", Label: "公務員"},
	{Category: "occupation", Value: "farmer", Label: "農民"},
	{Category: "occupation", Value: "fisherman", Label: "漁民"},
	{Category: "occupation", Value: "retired", Label: "退休人員"},
	{Category: "occupation", Value: "student", Label: "學生"},
	{Category: "occupation", Value: "freelancer", Label: "自由業"},
	{Category: "occupation", Value: "homemaker", Label: "家管"},
	{Category: "occupation", Value: "teacher", Label: "教師"},
	{Category: "occupation", Value: "medical", Label: "醫護人員"},
	{Category: "occupation", Value: "other", Label: "其他"},

	// 活動類型
	{Category: "eventType", Value: "wedding", Label: "紅帖（婚禮）"},
	{Category: "eventType", Value: "funeral", Label: "白帖（喪禮）"},
	{Category: "eventType", Value: "temple", Label: "廟會繞境"},
	{Category: "eventType", Value: "school", Label: "校慶活動"},
	{Category: "eventType", Value: "community", Label: "社區活動"},
	{Category: "eventType", Value: "association", Label: "協會聚會"},
	{Category: "eventType", Value: "self_hosted", Label: "自辦活動"},
	{Category: "eventType", Value: "other", Label: "其他"},

	// 關係等級
	{Category: "relationLevel", Value: "A", Label: "A級 - 鐵票"},
	{Category: "relationLevel", Value: "B", Label: "B級 - 友善"},
	{Category: "relationLevel", Value: "C", Label: "C級 - 搖擺"},

	// 影響力標籤
	{Category: "influence", Value: "village_chief", Label: "里長"},
	{Category: "influence", Value: "neighbor_chief", Label: "鄰長"},
	{Category: "influence", Value: "clan_association", Label: "宗親會"},
	{Category: "influence", Value: "parent_association", Label: "家長會"},
	{Category: "influence", Value: "kol", Label: "意見領袖"},
	{Category: "influence", Value: "community_leader", Label: "社區發展協會"},
	{Category: "influence", Value: "business_association", Label: "商業公會"},
}
