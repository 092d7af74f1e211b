package risk

var records = map[Level]Record{
	LevelHigh: {
		RiskLevel:  LevelHigh,
		Confidence: 87,
		Signals: Signals{
			Rainfall:           "+45% above normal (last 24h)",
			RiverLevel:         "Rising (0.5m/hr at gauging station)",
			SatelliteInference: "Increased surface water detected in low-lying zones",
		},
		Alerts: Alerts{
			En: "URGENT: High flood risk detected in your area. Please move to higher ground if you are in a low-lying zone. Keep emergency supplies ready.",
			Hi: "अत्यंत आवश्यक: आपके क्षेत्र में बाढ़ का उच्च जोखिम पाया गया है। यदि आप निचले इलाके में हैं तो कृपया ऊंचे स्थानों पर चले जाएं।",
			As: "জৰুৰী: আপোনাৰ অঞ্চলত বানপানীৰ উচ্চ আশংকা ধৰা পৰিছে। অনুগ্ৰহ কৰি ওখ ঠাইলৈ যাওক।",
			Bn: "জরুরি: আপনার এলাকায় বন্যার উচ্চ ঝুঁকি শনাক্ত হয়েছে। অনুগ্রহ করে উঁচু স্থানে আশ্রয় নিন।",
		},
	},
	LevelMedium: {
		RiskLevel:  LevelMedium,
		Confidence: 72,
		Signals: Signals{
			Rainfall:           "+15% above normal (last 24h)",
			RiverLevel:         "Rising slowly",
			SatelliteInference: "Minor water accumulation in traditional basins",
		},
		Alerts: Alerts{
			En: "CAUTION: Moderate flood risk. Residents in low-lying areas should stay alert and monitor local news.",
			Hi: "सावधानी: मध्यम बाढ़ का खतरा। निचले इलाकों के निवासियों को सतर्क रहना चाहिए।",
			As: "সাৱধান: মজলীয়া বানপানীৰ আশংকা। সতৰ্ক থাকক।",
			Bn: "সতর্কতা: মাঝারি বন্যার ঝুঁকি। নিচু এলাকার বাসিন্দাদের সতর্ক থাকা উচিত।",
		},
	},
	LevelCritical: {
		RiskLevel:  LevelCritical,
		Confidence: 96,
		Signals: Signals{
			Rainfall:           "+120% above normal (Extreme Event)",
			RiverLevel:         "Above Danger Level (2.1m over limit)",
			SatelliteInference: "Major flooding confirmed in residential sectors",
		},
		Alerts: Alerts{
			En: "EMERGENCY: Critical flood levels reached. Immediate evacuation recommended for designated zones. Do not cross flooded roads.",
			Hi: "आपातकालीन: बाढ़ का स्तर गंभीर है। तुरंत सुरक्षित स्थानों पर जाएँ।",
			As: "জৰুৰীকালীন অৱস্থা: বানপানীৰ মাত্ৰা অতি সংকটজনক। নিৰাপদ স্থানলৈ যাওক।",
			Bn: "জরুরি অবস্থা: বন্যার মাত্রা অত্যন্ত সংকটজনক। অবিলম্বে নিরাপদ স্থানে সরে যান।",
		},
	},
	LevelLow: {
		RiskLevel:  LevelLow,
		Confidence: 94,
		Signals: Signals{
			Rainfall:           "Normal levels",
			RiverLevel:         "Stable",
			SatelliteInference: "No significant changes in water spread",
		},
		Alerts: Alerts{
			En: "Status: Normal. No immediate flood threat detected. Stay tuned for further updates.",
			Hi: "स्थिति: सामान्य। बाढ़ का कोई तात्कालिक खतरा नहीं है। अपडेट के लिए बने रहें।",
			As: "স্থিতি: স্বাভাৱিক। বানপানীৰ কোনো তৎকালিন ভাবুকি নাই।",
			Bn: "স্থিতি: স্বাভাবিক। বন্যার কোনো তাৎক্ষণিক ঝুঁকি নেই।",
		},
	},
}

var recommendations = map[Level][]string{
	LevelLow: {
		"Normal rainfall patterns observed",
		"No immediate flood risk",
		"Continue regular monitoring",
		"Maintain standard drainage systems",
		"Monitor weather forecasts regularly",
	},
	LevelMedium: {
		"Moderate rainfall expected",
		"Potential for localized flooding",
		"Alert local authorities",
		"Inspect and clear drainage channels",
		"Prepare emergency response teams",
		"Alert public via media channels",
	},
	LevelHigh: {
		"HIGH ALERT: Significant flood risk",
		"Heavy rainfall pattern detected",
		"Activate emergency response protocols",
		"Evacuate vulnerable areas if needed",
		"Deploy rescue and relief teams",
		"Set up relief camps and shelters",
		"Coordinate with regional authorities",
		"Provide real-time updates to public",
	},
	LevelCritical: {
		"EMERGENCY: Flood levels above danger mark",
		"Evacuate designated zones immediately",
		"Do not cross flooded roads or bridges",
		"Move livestock and valuables to higher ground",
		"Follow instructions from district disaster management",
		"Keep phones charged and emergency kits ready",
	},
}

// Recommendations returns the action list for a level.
func Recommendations(l Level) []string {
	list := recommendations[l]
	out := make([]string, len(list))
	copy(out, list)
	return out
}
