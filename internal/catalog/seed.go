package catalog

import "crave-delivery/internal/domain"

func seedUser() domain.User {
	return domain.User{
		Name:    "张伟",
		Phone:   "138 0013 8000",
		Avatar:  "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?q=80&w=200&auto=format&fit=crop",
		Balance: 145.50,
		Points:  1240,
		Coupons: 3,
	}
}

func sampleReviews(count int) []domain.Review {
	reviews := []domain.Review{
		{
			ID:         "r1",
			UserName:   "李**",
			UserAvatar: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?q=80&w=100",
			Rating:     5,
			Date:       "2026-10-26",
			Content:    "味道非常好，送餐也很快，下次还会再来！",
		},
		{
			ID:         "r2",
			UserName:   "王**",
			UserAvatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=100",
			Rating:     4,
			Date:       "2026-10-25",
			Content:    "包装很严实，没有洒漏。分量也很足。",
			Reply:      "商家回复：感谢您的支持，期待您的再次光临！",
		},
		{
			ID:         "r3",
			UserName:   "Chen",
			UserAvatar: "https://images.unsplash.com/photo-1527980965255-d3b416303d12?q=80&w=100",
			Rating:     5,
			Date:       "2026-10-20",
			Content:    "yyds! 闭眼冲！",
		},
	}
	if count > len(reviews) {
		count = len(reviews)
	}
	return reviews[:count]
}

func commonInfo() domain.VendorInfo {
	return domain.VendorInfo{
		Address:      "中山路188号",
		Phone:        "027-88888888",
		OpeningHours: "10:00 - 22:00",
		Announcement: "用餐高峰期请提前下单，以免久候。",
		Services:     []string{"WIFI", "宝宝椅", "无烟区"},
	}
}

func infoWith(mutate func(*domain.VendorInfo)) domain.VendorInfo {
	info := commonInfo()
	mutate(&info)
	return info
}

func seedVendors() []domain.Vendor {
	return []domain.Vendor{
		{
			ID:                "1",
			Name:              "汉堡王(中山路)",
			Rating:            4.8,
			RatingCount:       1200,
			Distance:          "0.8km",
			TimeEstimate:      "25分钟",
			DeliveryFee:       3,
			MinOrderPrice:     20,
			Tags:              []string{"西式快餐", "汉堡", "炸鸡"},
			Image:             "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=600&auto=format&fit=crop",
			Promotion:         "满30减15",
			IsPickupAvailable: true,
			Address:           "中山路188号",
			Info:              commonInfo(),
			Reviews:           sampleReviews(3),
			Menu: []domain.MenuItem{
				{ID: "101", Category: "必点主食", Name: "皇堡", Price: 24, Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=300", Description: "火烤牛肉，经典美味", Sales: 1200},
				{ID: "102", Category: "必点主食", Name: "双层芝士牛堡", Price: 28, Image: "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?q=80&w=300", Description: "双层牛肉，双层满足", Sales: 950},
				{ID: "103", Category: "必点主食", Name: "狠霸王牛堡", Price: 32, Image: "https://images.unsplash.com/photo-1607013251379-e6eecfffe234?q=80&w=300", Description: "超大分量，肉食者最爱", Sales: 500},
				{ID: "104", Category: "小食甜点", Name: "大份薯条", Price: 12, Image: "https://images.unsplash.com/photo-1630384060421-cb20d0e0649d?q=80&w=300", Description: "金黄酥脆，经典配方", Sales: 2000},
				{ID: "105", Category: "小食甜点", Name: "霸王鸡条(5条)", Price: 12, Image: "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?q=80&w=300", Description: "鲜嫩多汁，香辣可口", Sales: 800},
				{ID: "106", Category: "小食甜点", Name: "巧克力圣代", Price: 8, Image: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?q=80&w=300", Description: "浓郁巧克力酱", Sales: 600},
				{ID: "107", Category: "快乐肥宅水", Name: "可口可乐(中)", Price: 8, Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=300", Sales: 1500},
				{ID: "108", Category: "快乐肥宅水", Name: "零度可乐", Price: 8, Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=300", Sales: 800},
			},
		},
		{
			ID:                "2",
			Name:              "鲜道寿司",
			Rating:            4.9,
			RatingCount:       850,
			Distance:          "2.5km",
			TimeEstimate:      "45分钟",
			DeliveryFee:       5,
			MinOrderPrice:     50,
			Tags:              []string{"日料", "寿司", "刺身"},
			Image:             "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?q=80&w=600&auto=format&fit=crop",
			Promotion:         "赠送加州卷一份",
			IsPickupAvailable: true,
			Address:           "海淀区中关村大街1号",
			Info: infoWith(func(i *domain.VendorInfo) {
				i.Address = "海淀区中关村大街1号"
				i.OpeningHours = "11:00 - 21:00"
			}),
			Reviews: sampleReviews(3),
			Menu: []domain.MenuItem{
				{ID: "201", Category: "极鲜刺身", Name: "三文鱼刺身(5片)", Price: 48, Image: "https://images.unsplash.com/photo-1534482421-64566f976cfa?q=80&w=300", Description: "挪威直运，厚切口感", Sales: 300},
				{ID: "202", Category: "极鲜刺身", Name: "北极甜虾(10只)", Price: 58, Image: "https://images.unsplash.com/photo-1559563820-e717df302324?q=80&w=300", Sales: 200},
				{ID: "203", Category: "手握寿司", Name: "火炙三文鱼手握(2粒)", Price: 16, Image: "https://images.unsplash.com/photo-1611143669185-af224c5e3252?q=80&w=300", Description: "火炙香气，入口即化", Sales: 600},
				{ID: "204", Category: "手握寿司", Name: "蒲烧鳗鱼手握(2粒)", Price: 18, Image: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?q=80&w=300", Sales: 500},
				{ID: "205", Category: "经典卷物", Name: "招牌加州卷", Price: 22, Image: "https://images.unsplash.com/photo-1558985250-27a406d64cb3?q=80&w=300", Sales: 800},
				{ID: "206", Category: "暖胃汤品", Name: "日式味噌汤", Price: 6, Image: "https://images.unsplash.com/photo-1547592180-85f173990554?q=80&w=300", Sales: 1000},
			},
		},
		{
			ID:                "3",
			Name:              "老北京炸酱面",
			Rating:            4.5,
			RatingCount:       500,
			Distance:          "1.2km",
			TimeEstimate:      "30分钟",
			DeliveryFee:       0,
			MinOrderPrice:     15,
			Tags:              []string{"面食", "北京菜", "家常菜"},
			Image:             "https://images.unsplash.com/photo-1552611052-33e04de081de?q=80&w=600&auto=format&fit=crop",
			IsPickupAvailable: true,
			Address:           "东城区南锣鼓巷12号",
			Info: infoWith(func(i *domain.VendorInfo) {
				i.Address = "东城区南锣鼓巷12号"
			}),
			Reviews: sampleReviews(2),
			Menu: []domain.MenuItem{
				{ID: "301", Category: "招牌面食", Name: "老北京炸酱面", Price: 18, Image: "https://images.unsplash.com/photo-1552611052-33e04de081de?q=80&w=300", Description: "八样菜码，秘制干黄酱", Sales: 1500},
				{ID: "302", Category: "招牌面食", Name: "西红柿鸡蛋面", Price: 16, Image: "https://images.unsplash.com/photo-1598514983318-2f64f8f4796c?q=80&w=300", Sales: 600},
				{ID: "303", Category: "招牌面食", Name: "红烧牛肉面", Price: 28, Image: "https://images.unsplash.com/photo-1555126634-323283e090fa?q=80&w=300", Sales: 400},
				{ID: "304", Category: "经典凉菜", Name: "拍黄瓜", Price: 8, Image: "https://images.unsplash.com/photo-1625938145744-e3805152422b?q=80&w=300", Description: "清爽解腻", Sales: 900},
				{ID: "305", Category: "经典凉菜", Name: "老醋花生", Price: 10, Image: "https://images.unsplash.com/photo-1582234057697-3f338d35661d?q=80&w=300", Sales: 700},
				{ID: "306", Category: "京味饮品", Name: "北冰洋汽水", Price: 6, Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=300", Sales: 1200},
				{ID: "307", Category: "京味饮品", Name: "自熬酸梅汤", Price: 5, Image: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?q=80&w=300", Sales: 800},
			},
		},
		{
			ID:                "4",
			Name:              "轻食主义沙拉",
			Rating:            4.7,
			RatingCount:       300,
			Distance:          "0.5km",
			TimeEstimate:      "15分钟",
			DeliveryFee:       2,
			MinOrderPrice:     25,
			Tags:              []string{"健康餐", "沙拉", "低卡"},
			Image:             "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=600&auto=format&fit=crop",
			Promotion:         "鲜榨果汁买一送一",
			IsPickupAvailable: true,
			Address:           "朝阳区三里屯SOHO",
			Info:              commonInfo(),
			Reviews:           sampleReviews(3),
			Menu: []domain.MenuItem{
				{ID: "401", Category: "主食沙拉", Name: "鸡胸肉考伯沙拉", Price: 28, Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=300", Sales: 100},
				{ID: "402", Category: "主食沙拉", Name: "大虾牛油果沙拉", Price: 38, Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=300", Sales: 80},
			},
		},
		{
			ID:                "5",
			Name:              "深夜烧烤",
			Rating:            4.2,
			RatingCount:       2000,
			Distance:          "5.0km",
			TimeEstimate:      "60分钟",
			DeliveryFee:       8,
			MinOrderPrice:     50,
			Tags:              []string{"烧烤", "烤串", "夜宵"},
			Image:             "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=600&auto=format&fit=crop",
			IsPickupAvailable: false,
			Address:           "丰台区方庄美食街",
			Info: infoWith(func(i *domain.VendorInfo) {
				i.OpeningHours = "17:00 - 04:00"
			}),
			Reviews: sampleReviews(1),
			Menu: []domain.MenuItem{
				{ID: "501", Category: "必点肉串", Name: "羊肉串(10串)", Price: 30, Image: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=300", Sales: 200},
				{ID: "502", Category: "必点肉串", Name: "烤鸡翅(2串)", Price: 12, Image: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=300", Sales: 150},
			},
		},
		{
			ID:                "6",
			Name:              "张虎麻辣烫",
			Rating:            4.6,
			RatingCount:       320,
			Distance:          "1.5km",
			TimeEstimate:      "35分钟",
			DeliveryFee:       1.5,
			MinOrderPrice:     18,
			Tags:              []string{"麻辣烫", "川菜", "小吃"},
			Image:             "https://images.unsplash.com/photo-1547592180-85f173990554?q=80&w=600&auto=format&fit=crop",
			Promotion:         "满25减8",
			IsPickupAvailable: true,
			Address:           "中山路210号",
			Info:              commonInfo(),
			Reviews:           sampleReviews(2),
			Menu: []domain.MenuItem{
				{ID: "601", Category: "自选套餐", Name: "单人超值套餐", Price: 22, Image: "https://images.unsplash.com/photo-1547592180-85f173990554?q=80&w=300", Sales: 500},
			},
		},
		{
			ID:                "7",
			Name:              "塔斯特中国汉堡",
			Rating:            4.7,
			RatingCount:       560,
			Distance:          "2.1km",
			TimeEstimate:      "40分钟",
			DeliveryFee:       4,
			MinOrderPrice:     25,
			Tags:              []string{"中式汉堡", "炸鸡", "国潮"},
			Image:             "https://images.unsplash.com/photo-1550547660-d9450f859349?q=80&w=600&auto=format&fit=crop",
			Promotion:         "新品套餐8折",
			IsPickupAvailable: true,
			Address:           "建设大道55号",
			Info:              commonInfo(),
			Reviews:           sampleReviews(2),
			Menu: []domain.MenuItem{
				{ID: "701", Category: "主食", Name: "香辣鸡腿堡", Price: 16, Image: "https://images.unsplash.com/photo-1550547660-d9450f859349?q=80&w=300", Sales: 200},
			},
		},
		{
			ID:                "8",
			Name:              "蜜雪冰城",
			Rating:            4.9,
			RatingCount:       2000,
			Distance:          "0.6km",
			TimeEstimate:      "20分钟",
			DeliveryFee:       0,
			MinOrderPrice:     10,
			Tags:              []string{"奶茶", "冰淇淋", "饮品"},
			Image:             "https://images.unsplash.com/photo-1556679343-c7306c1976bc?q=80&w=600&auto=format&fit=crop",
			IsPickupAvailable: true,
			Address:           "中山路步行街A01",
			Info:              commonInfo(),
			Reviews:           sampleReviews(3),
			Menu: []domain.MenuItem{
				{ID: "801", Category: "招牌", Name: "冰鲜柠檬水", Price: 4, Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?q=80&w=300", Sales: 5000},
				{ID: "802", Category: "冰淇淋", Name: "新鲜冰淇淋", Price: 2, Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?q=80&w=300", Sales: 3000},
			},
		},
		{
			ID:                "9",
			Name:              "好利来(万达店)",
			Rating:            4.8,
			RatingCount:       2200,
			Distance:          "1.2km",
			TimeEstimate:      "30分钟",
			DeliveryFee:       2,
			MinOrderPrice:     25,
			Tags:              []string{"甜点", "蛋糕", "面包"},
			Image:             "https://images.unsplash.com/photo-1578985545062-69928b1d9587?q=80&w=600&auto=format&fit=crop",
			Promotion:         "半熟芝士买二送一",
			IsPickupAvailable: true,
			Address:           "中山路万达广场1楼",
			Info:              commonInfo(),
			Reviews:           sampleReviews(3),
			Menu: []domain.MenuItem{
				{ID: "901", Category: "网红产品", Name: "半熟芝士(5枚)", Price: 38, Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?q=80&w=300", Sales: 1000},
			},
		},
		{
			ID:                "10",
			Name:              "全家便利店",
			Rating:            4.6,
			RatingCount:       500,
			Distance:          "0.3km",
			TimeEstimate:      "20分钟",
			DeliveryFee:       0,
			MinOrderPrice:     0,
			Tags:              []string{"超市", "便利店", "零食"},
			Image:             "https://images.unsplash.com/photo-1542838132-92c53300491e?q=80&w=600&auto=format&fit=crop",
			IsPickupAvailable: true,
			Address:           "中山路166号",
			Info: infoWith(func(i *domain.VendorInfo) {
				i.OpeningHours = "24小时营业"
			}),
			Reviews: sampleReviews(2),
			Menu: []domain.MenuItem{
				{ID: "1001", Category: "快乐水", Name: "可口可乐 500ml", Price: 3.5, Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=300", Sales: 900},
				{ID: "1002", Category: "快乐水", Name: "农夫山泉 550ml", Price: 2, Image: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=300", Sales: 1200},
				{ID: "1003", Category: "休闲零食", Name: "乐事薯片(原味)", Price: 7.5, Image: "https://images.unsplash.com/photo-1566478919030-26d81dd812de?q=80&w=300", Sales: 500},
				{ID: "1004", Category: "休闲零食", Name: "卫龙辣条", Price: 4, Image: "https://images.unsplash.com/photo-1566478919030-26d81dd812de?q=80&w=300", Sales: 800},
				{ID: "1005", Category: "速食便当", Name: "咖喱猪排饭", Price: 16.8, Image: "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?q=80&w=300", Sales: 200},
				{ID: "1006", Category: "日用百货", Name: "清风纸巾", Price: 2, Image: "https://images.unsplash.com/photo-1583947215259-38e31be8751f?q=80&w=300", Sales: 300},
			},
		},
		{
			ID:                "12",
			Name:              "海王星辰健康药房",
			Rating:            4.7,
			RatingCount:       150,
			Distance:          "1.5km",
			TimeEstimate:      "30分钟",
			DeliveryFee:       4,
			MinOrderPrice:     0,
			Tags:              []string{"药店", "药品", "口罩"},
			Image:             "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?q=80&w=600&auto=format&fit=crop",
			IsPickupAvailable: true,
			Address:           "建设大道12号",
			Info: infoWith(func(i *domain.VendorInfo) {
				i.OpeningHours = "24小时营业"
				i.Announcement = "夜间买药请按门铃"
			}),
			Reviews: sampleReviews(1),
			Menu: []domain.MenuItem{
				{ID: "1201", Category: "感冒用药", Name: "999感冒灵颗粒", Price: 15, Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=300", Sales: 200},
				{ID: "1202", Category: "感冒用药", Name: "连花清瘟胶囊", Price: 24, Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=300", Sales: 300},
				{ID: "1203", Category: "日常护理", Name: "医用外科口罩(10只)", Price: 5, Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=300", Sales: 1000},
				{ID: "1204", Category: "日常护理", Name: "75%酒精消毒液", Price: 8, Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=300", Sales: 400},
				{ID: "1205", Category: "家庭常备", Name: "创可贴(20片)", Price: 6, Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=300", Sales: 500},
				{ID: "1206", Category: "家庭常备", Name: "电子体温计", Price: 29, Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=300", Sales: 100},
			},
		},
		{
			ID:                "13",
			Name:              "UU跑腿",
			Rating:            4.8,
			RatingCount:       3000,
			Distance:          "附近",
			TimeEstimate:      "最快15分钟",
			DeliveryFee:       10,
			MinOrderPrice:     0,
			Tags:              []string{"跑腿", "帮买", "帮送"},
			Image:             "https://images.unsplash.com/photo-1526367790999-0150786686a2?q=80&w=600",
			IsPickupAvailable: false,
			Address:           "全城服务",
			Info: infoWith(func(i *domain.VendorInfo) {
				i.Address = "全城覆盖"
				i.Announcement = "24小时接单，风雨无阻"
			}),
			Reviews: sampleReviews(3),
			Menu: []domain.MenuItem{
				{ID: "1301", Category: "帮我买", Name: "代买咖啡/奶茶", Price: 15, Image: "https://images.unsplash.com/photo-1596525727187-57551000490d?q=80&w=300", Description: "指定店铺，指定商品", Sales: 5000},
				{ID: "1302", Category: "帮我买", Name: "代买香烟/酒水", Price: 15, Image: "https://images.unsplash.com/photo-1596525727187-57551000490d?q=80&w=300", Description: "附近购买，快速送达", Sales: 2000},
				{ID: "1303", Category: "帮我买", Name: "万能代买 (任意商品)", Price: 20, Image: "https://images.unsplash.com/photo-1596525727187-57551000490d?q=80&w=300", Description: "备注商品详情，实报实销", Sales: 3000},
				{ID: "1304", Category: "帮我送", Name: "3公里内文件配送", Price: 12, Image: "https://images.unsplash.com/photo-1580674285054-bed31e145f59?q=80&w=300", Description: "专人直送，安全快捷", Sales: 4000},
				{ID: "1305", Category: "帮我送", Name: "同城急送 (5-10公里)", Price: 25, Image: "https://images.unsplash.com/photo-1580674285054-bed31e145f59?q=80&w=300", Description: "一小时达", Sales: 1500},
				{ID: "1306", Category: "帮办事", Name: "代排队 (1小时)", Price: 40, Image: "https://images.unsplash.com/photo-1596525727187-57551000490d?q=80&w=300", Description: "网红店、医院挂号等", Sales: 800},
			},
		},
		{
			ID:                "14",
			Name:              "茶百道",
			Rating:            4.7,
			RatingCount:       1500,
			Distance:          "0.7km",
			TimeEstimate:      "25分钟",
			DeliveryFee:       0,
			MinOrderPrice:     15,
			Tags:              []string{"奶茶", "饮品", "果茶"},
			Image:             "https://images.unsplash.com/photo-1543253687-c931c8e01820?q=80&w=600&auto=format&fit=crop",
			Promotion:         "招牌豆乳玉麒麟7折",
			IsPickupAvailable: true,
			Address:           "中山路步行街B12",
			Info:              commonInfo(),
			Reviews:           sampleReviews(2),
			Menu: []domain.MenuItem{
				{ID: "1401", Category: "招牌", Name: "豆乳玉麒麟", Price: 16, Image: "https://images.unsplash.com/photo-1543253687-c931c8e01820?q=80&w=300", Sales: 800},
			},
		},
		{
			ID:                "16",
			Name:              "大润发",
			Rating:            4.8,
			RatingCount:       900,
			Distance:          "3.0km",
			TimeEstimate:      "60分钟",
			DeliveryFee:       6,
			MinOrderPrice:     39,
			Tags:              []string{"超市", "生鲜", "日用品"},
			Image:             "https://images.unsplash.com/photo-1578916171728-46686eac8d58?q=80&w=600&auto=format&fit=crop",
			Promotion:         "周末大促",
			IsPickupAvailable: true,
			Address:           "建设大道888号",
			Info: infoWith(func(i *domain.VendorInfo) {
				i.OpeningHours = "08:00 - 22:00"
			}),
			Reviews: sampleReviews(2),
			Menu: []domain.MenuItem{
				{ID: "1601", Category: "生鲜", Name: "精品五花肉 500g", Price: 25, Image: "https://images.unsplash.com/photo-1607623814075-e51df1bd6562?q=80&w=300", Sales: 300},
			},
		},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:          "1001",
			VendorID:    "1",
			VendorName:  "汉堡王(中山路)",
			VendorImage: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=600&auto=format&fit=crop",
			Items: []domain.OrderItem{
				{Name: "双层芝士牛堡", Quantity: 1, Price: 28},
				{Name: "大份薯条", Quantity: 1, Price: 12},
			},
			TotalAmount: 40,
			Status:      domain.StatusPreparing,
			Date:        "2026-10-27 12:30",
			Mode:        domain.ModeDelivery,
		},
		{
			ID:          "1002",
			VendorID:    "2",
			VendorName:  "鲜道寿司",
			VendorImage: "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?q=80&w=600&auto=format&fit=crop",
			Items: []domain.OrderItem{
				{Name: "三文鱼刺身(5片)", Quantity: 2, Price: 48},
				{Name: "日式味噌汤", Quantity: 2, Price: 6},
			},
			TotalAmount: 108,
			Status:      domain.StatusCompleted,
			Date:        "2026-10-26 19:15",
			Mode:        domain.ModePickup,
		},
		{
			ID:          "1003",
			VendorID:    "3",
			VendorName:  "老北京炸酱面",
			VendorImage: "https://images.unsplash.com/photo-1552611052-33e04de081de?q=80&w=600&auto=format&fit=crop",
			Items: []domain.OrderItem{
				{Name: "老北京炸酱面", Quantity: 1, Price: 18},
			},
			TotalAmount: 18,
			Status:      domain.StatusCancelled,
			Date:        "2026-10-25 11:45",
			Mode:        domain.ModeDelivery,
		},
	}
}

// seedCheckoutCoupons is the voucher set the checkout screen offers.
func seedCheckoutCoupons() []domain.Coupon {
	return []domain.Coupon{
		{ID: "c1", Title: "通用红包", Amount: 5, Min: 0, Description: "无门槛使用"},
		{ID: "c2", Title: "满减神券", Amount: 8, Min: 35, Description: "满35可用"},
		{ID: "c3", Title: "大额补贴", Amount: 15, Min: 80, Description: "满80可用"},
	}
}

// seedWalletCoupons backs the coupons wallet page, which shows a different
// set than checkout does.
func seedWalletCoupons() []domain.Coupon {
	return []domain.Coupon{
		{ID: "w1", Title: "通用红包", Amount: 8, Min: 30, Description: "全平台通用", Expiry: "2026-11-01"},
		{ID: "w2", Title: "大额满减券", Amount: 15, Min: 100, Description: "限超市便利使用", Expiry: "2026-11-05"},
		{ID: "w3", Title: "无门槛红包", Amount: 5, Min: 0, Description: "新用户专享", Expiry: "2026-10-31"},
	}
}

func seedAddresses() []domain.Address {
	return []domain.Address{
		{ID: "addr1", Tag: "公司", Address: "光谷软件园 F4栋", Detail: "10楼 1002室", Name: "张伟", Phone: "138 0013 8000", Gender: "先生"},
		{ID: "addr2", Tag: "家", Address: "万科城市花园", Detail: "3期 5栋 2单元 601", Name: "张伟", Phone: "138 0013 8000", Gender: "先生"},
	}
}

func seedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, Name: "汉堡王(中山路)", Date: "2026-10-27 12:30", Amount: -40.00, Type: "expense"},
		{ID: 2, Name: "充值", Date: "2026-10-20 09:00", Amount: 200.00, Type: "income"},
		{ID: 3, Name: "鲜道寿司", Date: "2026-10-15 19:15", Amount: -108.00, Type: "expense"},
		{ID: 4, Name: "退款-老北京炸酱面", Date: "2026-10-10 11:50", Amount: 18.00, Type: "income"},
	}
}

func seedHotCities() []string {
	return []string{"上海", "北京", "广州", "深圳", "杭州", "成都", "武汉", "南京", "天津", "重庆"}
}

func seedCityGroups() []domain.CityGroup {
	return []domain.CityGroup{
		{Letter: "A", Cities: []string{"鞍山", "安庆"}},
		{Letter: "B", Cities: []string{"北京", "保定", "包头"}},
		{Letter: "C", Cities: []string{"成都", "重庆", "长沙", "长春"}},
		{Letter: "D", Cities: []string{"大连", "东莞"}},
		{Letter: "F", Cities: []string{"福州", "佛山"}},
		{Letter: "G", Cities: []string{"广州", "贵阳"}},
		{Letter: "H", Cities: []string{"杭州", "哈尔滨", "合肥"}},
		{Letter: "J", Cities: []string{"济南", "金华"}},
		{Letter: "N", Cities: []string{"南京", "宁波", "南昌"}},
		{Letter: "S", Cities: []string{"上海", "深圳", "沈阳", "苏州", "石家庄"}},
		{Letter: "W", Cities: []string{"武汉", "无锡"}},
		{Letter: "X", Cities: []string{"西安", "厦门"}},
		{Letter: "Z", Cities: []string{"郑州", "珠海"}},
	}
}

func seedDeliveryTimes() []string {
	return []string{
		"立即送出 (预计12:45)",
		"13:00",
		"13:15",
		"13:30",
		"13:45",
		"14:00",
		"14:15",
		"14:30",
	}
}
